// Package entities contains core business entities.
package entities

// Club is a fixed-identity entity holding a monetary budget.
type Club struct {
	Name   string
	Budget int64
}

// DefaultClubs returns the seed clubs used when no snapshot has been stored yet.
func DefaultClubs() []Club {
	return []Club{
		{Name: "GNK Dinamo Zagreb", Budget: 10950000},
		{Name: "HNK Hajduk Split", Budget: 33200000},
		{Name: "HNK Rijeka", Budget: 2600000},
		{Name: "NK Osijek", Budget: 3000000},
		{Name: "NK Istra 1961", Budget: 1500000},
		{Name: "NK Šibenik", Budget: 1950000},
		{Name: "HŠK Zrinjski Mostar", Budget: 5000000},
		{Name: "NK Široki Brijeg", Budget: 1500000},
		{Name: "FK Borac Banja Luka", Budget: 4600000},
		{Name: "FK Željezničar", Budget: 10000000},
		{Name: "FK Velež Mostar", Budget: 8600000},
	}
}
