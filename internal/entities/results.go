// Package entities contains core business entities.
package entities

import "time"

// TransferResult describes a completed permanent transfer.
type TransferResult struct {
	PlayerID   string
	FromClub   string
	ToClub     string
	Price      int64
	FromBudget int64
	ToBudget   int64
	// LoanEnded is set when the transfer cancelled an active loan.
	LoanEnded bool
}

// LoanResult describes a newly issued loan.
type LoanResult struct {
	Loan     Loan
	Days     int
	Replaced bool
}

// LoanReversal records a loan undone by the expiry sweep.
type LoanReversal struct {
	PlayerID     string
	LoanedTo     string
	RestoredClub string
	EndAt        time.Time
}

// SweepResult summarizes one expiry sweep.
type SweepResult struct {
	Checked  int
	Reversed []LoanReversal
}
