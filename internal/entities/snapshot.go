// Package entities contains core business entities.
package entities

import "fmt"

// Snapshot is the unit of durability: the full ledger state.
type Snapshot struct {
	Players map[string]Player
	Budgets map[string]int64
	Loans   map[string]Loan
}

// NewSnapshot returns an empty snapshot with allocated maps.
func NewSnapshot() Snapshot {
	return Snapshot{
		Players: make(map[string]Player),
		Budgets: make(map[string]int64),
		Loans:   make(map[string]Loan),
	}
}

// SeedSnapshot returns the default clubs with no players and no loans.
func SeedSnapshot() Snapshot {
	s := NewSnapshot()
	for _, c := range DefaultClubs() {
		s.Budgets[c.Name] = c.Budget
	}
	return s
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Players: make(map[string]Player, len(s.Players)),
		Budgets: make(map[string]int64, len(s.Budgets)),
		Loans:   make(map[string]Loan, len(s.Loans)),
	}
	for k, v := range s.Players {
		out.Players[k] = v
	}
	for k, v := range s.Budgets {
		out.Budgets[k] = v
	}
	for k, v := range s.Loans {
		out.Loans[k] = v
	}
	return out
}

// HasClub reports whether name belongs to the club set.
func (s Snapshot) HasClub(name string) bool {
	_, ok := s.Budgets[name]
	return ok
}

// Validate checks the ledger invariants and wraps violations in ErrCorruptSnapshot.
func (s Snapshot) Validate() error {
	if len(s.Budgets) == 0 {
		return fmt.Errorf("%w: no clubs", ErrCorruptSnapshot)
	}
	for club, budget := range s.Budgets {
		if budget < 0 {
			return fmt.Errorf("%w: club %q has negative budget %d", ErrCorruptSnapshot, club, budget)
		}
	}
	for id, p := range s.Players {
		if !s.HasClub(p.Club) {
			return fmt.Errorf("%w: player %q belongs to unknown club %q", ErrCorruptSnapshot, id, p.Club)
		}
	}
	for id, l := range s.Loans {
		if _, ok := s.Players[id]; !ok {
			return fmt.Errorf("%w: loan for unregistered player %q", ErrCorruptSnapshot, id)
		}
		if !s.HasClub(l.OriginalClub) || !s.HasClub(l.LoanedTo) {
			return fmt.Errorf("%w: loan for player %q references unknown club", ErrCorruptSnapshot, id)
		}
	}
	return nil
}
