package domain

import (
	"context"
	"fmt"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/ledger"
)

// Transfer moves a player permanently to toClub. The buying club pays price
// to the selling club; an active loan is ended by the transfer.
func (u *Usecase) Transfer(ctx context.Context, playerID, toClub string, price int64) (res *entities.TransferResult, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	defer func() { u.observe("transfer", err) }()

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", entities.ErrInvalidArgument)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price %d is negative", entities.ErrInvalidAmount, price)
	}

	var out entities.TransferResult
	err = u.ledger.Update(ctx, func(tx *ledger.Tx) error {
		p, ok := tx.Player(playerID)
		if !ok {
			return fmt.Errorf("%w: %s", entities.ErrPlayerNotFound, playerID)
		}
		fromBudget, ok := tx.Budget(p.Club)
		if !ok {
			return fmt.Errorf("%w: %q", entities.ErrUnknownClub, p.Club)
		}
		toBudget, ok := tx.Budget(toClub)
		if !ok {
			return fmt.Errorf("%w: %q", entities.ErrUnknownClub, toClub)
		}
		if toBudget < price {
			return fmt.Errorf("%w: %s has %d, price is %d", entities.ErrInsufficientBudget, toClub, toBudget, price)
		}

		out = entities.TransferResult{PlayerID: playerID, FromClub: p.Club, ToClub: toClub, Price: price}
		if p.Club == toClub {
			out.FromBudget, out.ToBudget = fromBudget, toBudget
		} else {
			out.FromBudget, out.ToBudget = fromBudget+price, toBudget-price
			if err := tx.SetBudget(toClub, out.ToBudget); err != nil {
				return err
			}
			if err := tx.SetBudget(p.Club, out.FromBudget); err != nil {
				return err
			}
		}

		if _, onLoan := tx.Loan(playerID); onLoan {
			tx.DeleteLoan(playerID)
			out.LoanEnded = true
		}
		p.Club = toClub
		return tx.PutPlayer(p)
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("player transferred",
		"player_id", playerID,
		"from_club", out.FromClub,
		"to_club", out.ToClub,
		"price", price,
		"loan_ended", out.LoanEnded,
	)
	return &out, nil
}
