// Package entities contains core business entities.
package entities

// Player is a registered entity owned by exactly one club.
type Player struct {
	ID           string
	DisplayLabel string
	ProfileRef   string
	Club         string
	ContractTerm string
}

// PlayerView is a read projection of a player with its active loan, if any.
type PlayerView struct {
	Player
	Loan *Loan
}
