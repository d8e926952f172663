package domain

import (
	"context"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/ledger"
)

// RunExpirySweepOnce returns every player whose loan has ended to the
// original club and removes those loans in a single commit.
func (u *Usecase) RunExpirySweepOnce(ctx context.Context) (res entities.SweepResult, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	defer func() { u.observe("sweep", err) }()

	now := u.now().UTC()
	var out entities.SweepResult
	err = u.ledger.Update(ctx, func(tx *ledger.Tx) error {
		loans := tx.Loans()
		out = entities.SweepResult{Checked: len(loans)}

		var expired []entities.Loan
		for _, l := range loans {
			if l.Expired(now) {
				expired = append(expired, l)
			}
		}
		for _, l := range expired {
			if p, ok := tx.Player(l.PlayerID); ok {
				p.Club = l.OriginalClub
				if err := tx.PutPlayer(p); err != nil {
					return err
				}
			}
			out.Reversed = append(out.Reversed, entities.LoanReversal{
				PlayerID:     l.PlayerID,
				LoanedTo:     l.LoanedTo,
				RestoredClub: l.OriginalClub,
				EndAt:        l.EndAt,
			})
		}
		for _, l := range expired {
			tx.DeleteLoan(l.PlayerID)
		}
		return nil
	})
	if err != nil {
		return entities.SweepResult{Checked: out.Checked}, err
	}

	u.metrics.LoansReversed(len(out.Reversed))
	for _, r := range out.Reversed {
		u.log.Infow("loan expired", "player_id", r.PlayerID, "loaned_to", r.LoanedTo, "club", r.RestoredClub)
	}
	u.log.Debugw("expiry sweep done", "checked", out.Checked, "reversed", len(out.Reversed))
	return out, nil
}
