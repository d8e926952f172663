// Package entities contains core business entities.
package entities

import "time"

// MaxLoanEnd is the latest end time the stored document can represent.
var MaxLoanEnd = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)

// Loan is a temporary club reassignment with a scheduled automatic reversal.
type Loan struct {
	PlayerID     string
	OriginalClub string
	LoanedTo     string
	EndAt        time.Time
}

// Expired reports whether the loan term has elapsed at now.
func (l Loan) Expired(now time.Time) bool {
	return !l.EndAt.After(now)
}
