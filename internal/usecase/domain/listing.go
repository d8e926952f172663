package domain

import (
	"context"
	"sort"

	"club-transfer-ledger/internal/entities"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators keep state between comparisons, so one is built per call.
func newCollator() *collate.Collator {
	return collate.New(language.Croatian)
}

// ListPlayers returns all players ordered by display label, each with its active loan.
func (u *Usecase) ListPlayers(ctx context.Context) ([]entities.PlayerView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := u.ledger.Snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]entities.PlayerView, 0, len(snapshot.Players))
	for id, p := range snapshot.Players {
		view := entities.PlayerView{Player: p}
		if l, ok := snapshot.Loans[id]; ok {
			view.Loan = &l
		}
		out = append(out, view)
	}

	c := newCollator()
	sort.Slice(out, func(i, j int) bool {
		if cmp := c.CompareString(out[i].DisplayLabel, out[j].DisplayLabel); cmp != 0 {
			return cmp < 0
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListBudgets returns every club with its budget ordered by name.
func (u *Usecase) ListBudgets(ctx context.Context) ([]entities.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := u.ledger.Snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]entities.Club, 0, len(snapshot.Budgets))
	for name, budget := range snapshot.Budgets {
		out = append(out, entities.Club{Name: name, Budget: budget})
	}

	c := newCollator()
	sort.Slice(out, func(i, j int) bool {
		if cmp := c.CompareString(out[i].Name, out[j].Name); cmp != 0 {
			return cmp < 0
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
