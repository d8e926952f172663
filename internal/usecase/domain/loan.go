package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/ledger"
)

// MaxLoanDays bounds a single loan term.
const MaxLoanDays = 36500

// ParseLoanDays accepts a positive day count with an optional "d" suffix: "10d" or "10".
func ParseLoanDays(raw string) (int, error) {
	digits := strings.TrimSuffix(strings.TrimSpace(raw), "d")
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", entities.ErrInvalidDuration, raw)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", entities.ErrInvalidDuration, raw)
		}
	}
	days, err := strconv.Atoi(digits)
	if err != nil || days <= 0 || days > MaxLoanDays {
		return 0, fmt.Errorf("%w: %q", entities.ErrInvalidDuration, raw)
	}
	return days, nil
}

// Loan moves a player to toClub until the loan term ends. A second loan
// replaces the first one, including its original club.
func (u *Usecase) Loan(ctx context.Context, playerID, toClub, duration string) (res *entities.LoanResult, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	defer func() { u.observe("loan", err) }()

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", entities.ErrInvalidArgument)
	}

	var out entities.LoanResult
	err = u.ledger.Update(ctx, func(tx *ledger.Tx) error {
		p, ok := tx.Player(playerID)
		if !ok {
			return fmt.Errorf("%w: %s", entities.ErrPlayerNotFound, playerID)
		}
		days, err := ParseLoanDays(duration)
		if err != nil {
			return err
		}
		if !tx.HasClub(toClub) {
			return fmt.Errorf("%w: %q", entities.ErrUnknownClub, toClub)
		}

		now := u.now().UTC()
		end := now.AddDate(0, 0, days)
		if !end.After(now) || end.After(entities.MaxLoanEnd) {
			return fmt.Errorf("%w: %q ends at %s", entities.ErrInvalidDuration, duration, end.Format(time.RFC3339))
		}

		_, replaced := tx.Loan(playerID)
		loan := entities.Loan{
			PlayerID:     playerID,
			OriginalClub: p.Club,
			LoanedTo:     toClub,
			EndAt:        end,
		}
		p.Club = toClub
		if err := tx.PutPlayer(p); err != nil {
			return err
		}
		if err := tx.PutLoan(loan); err != nil {
			return err
		}
		out = entities.LoanResult{Loan: loan, Days: days, Replaced: replaced}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out.Replaced {
		u.log.Warnw("active loan replaced", "player_id", playerID, "original_club", out.Loan.OriginalClub)
	}
	u.log.Infow("player loaned",
		"player_id", playerID,
		"original_club", out.Loan.OriginalClub,
		"loaned_to", toClub,
		"end_at", out.Loan.EndAt,
	)
	return &out, nil
}
