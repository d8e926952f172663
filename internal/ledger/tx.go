package ledger

import (
	"fmt"
	"sort"

	"club-transfer-ledger/internal/entities"
)

// Tx is the mutable working copy handed to Update callbacks. It must not be
// retained after the callback returns.
type Tx struct {
	state   entities.Snapshot
	changed bool
}

// HasClub reports whether name is in the fixed club set.
func (tx *Tx) HasClub(name string) bool {
	return tx.state.HasClub(name)
}

// Budget returns the budget of a club.
func (tx *Tx) Budget(club string) (int64, bool) {
	b, ok := tx.state.Budgets[club]
	return b, ok
}

// SetBudget changes the budget of an existing club.
func (tx *Tx) SetBudget(club string, amount int64) error {
	if !tx.HasClub(club) {
		return fmt.Errorf("%w: %s", entities.ErrUnknownClub, club)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %s would drop to %d", entities.ErrInsufficientBudget, club, amount)
	}
	tx.state.Budgets[club] = amount
	tx.changed = true
	return nil
}

// Player returns a player by id.
func (tx *Tx) Player(id string) (entities.Player, bool) {
	p, ok := tx.state.Players[id]
	return p, ok
}

// PutPlayer inserts or replaces a player.
func (tx *Tx) PutPlayer(p entities.Player) error {
	if !tx.HasClub(p.Club) {
		return fmt.Errorf("%w: %s", entities.ErrUnknownClub, p.Club)
	}
	tx.state.Players[p.ID] = p
	tx.changed = true
	return nil
}

// DeletePlayer removes a player together with its loan.
func (tx *Tx) DeletePlayer(id string) {
	if _, ok := tx.state.Players[id]; !ok {
		return
	}
	delete(tx.state.Players, id)
	delete(tx.state.Loans, id)
	tx.changed = true
}

// Loan returns the active loan of a player.
func (tx *Tx) Loan(playerID string) (entities.Loan, bool) {
	l, ok := tx.state.Loans[playerID]
	return l, ok
}

// PutLoan inserts or replaces the loan of a player.
func (tx *Tx) PutLoan(l entities.Loan) error {
	if _, ok := tx.state.Players[l.PlayerID]; !ok {
		return fmt.Errorf("%w: %s", entities.ErrPlayerNotFound, l.PlayerID)
	}
	if !tx.HasClub(l.OriginalClub) || !tx.HasClub(l.LoanedTo) {
		return fmt.Errorf("%w: loan of %s", entities.ErrUnknownClub, l.PlayerID)
	}
	tx.state.Loans[l.PlayerID] = l
	tx.changed = true
	return nil
}

// DeleteLoan removes the loan of a player, if any.
func (tx *Tx) DeleteLoan(playerID string) {
	if _, ok := tx.state.Loans[playerID]; !ok {
		return
	}
	delete(tx.state.Loans, playerID)
	tx.changed = true
}

// Loans returns the active loans ordered by player id.
func (tx *Tx) Loans() []entities.Loan {
	out := make([]entities.Loan, 0, len(tx.state.Loans))
	for _, l := range tx.state.Loans {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}
