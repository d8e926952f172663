// Package dto holds the JSON shapes of the HTTP API.
package dto

import (
	"encoding/json"
	"time"
)

// RegisterPlayerRequest is the body of POST /players.
type RegisterPlayerRequest struct {
	PlayerID     string `json:"player_id" validate:"required"`
	DisplayLabel string `json:"display_label" validate:"required"`
	ProfileRef   string `json:"profile_ref"`
	Club         string `json:"club" validate:"required"`
	ContractTerm string `json:"contract_term"`
}

// TransferRequest is the body of POST /players/:id/transfer. Price is kept
// as the raw JSON number so fractional values can be rejected as invalid amounts.
type TransferRequest struct {
	ToClub string      `json:"to_club" validate:"required"`
	Price  json.Number `json:"price" validate:"required"`
}

// LoanRequest is the body of POST /players/:id/loan.
type LoanRequest struct {
	ToClub   string `json:"to_club" validate:"required"`
	Duration string `json:"duration" validate:"required"`
}

// Loan is an active loan.
type Loan struct {
	OriginalClub string    `json:"original_club"`
	LoanedTo     string    `json:"loaned_to"`
	EndAt        time.Time `json:"end_at"`
}

// Player is a registered player with its active loan.
type Player struct {
	PlayerID     string `json:"player_id"`
	DisplayLabel string `json:"display_label"`
	ProfileRef   string `json:"profile_ref"`
	Club         string `json:"club"`
	ContractTerm string `json:"contract_term"`
	Loan         *Loan  `json:"loan,omitempty"`
}

// Club is a club with its budget.
type Club struct {
	Club   string `json:"club"`
	Budget int64  `json:"budget"`
}

// TransferResult is the response of a transfer.
type TransferResult struct {
	PlayerID   string `json:"player_id"`
	FromClub   string `json:"from_club"`
	ToClub     string `json:"to_club"`
	Price      int64  `json:"price"`
	FromBudget int64  `json:"from_budget"`
	ToBudget   int64  `json:"to_budget"`
	LoanEnded  bool   `json:"loan_ended"`
}

// LoanResult is the response of a loan.
type LoanResult struct {
	PlayerID     string    `json:"player_id"`
	OriginalClub string    `json:"original_club"`
	LoanedTo     string    `json:"loaned_to"`
	Days         int       `json:"days"`
	EndAt        time.Time `json:"end_at"`
	Replaced     bool      `json:"replaced"`
}

// LoanReversal is one loan undone by a sweep.
type LoanReversal struct {
	PlayerID     string    `json:"player_id"`
	LoanedTo     string    `json:"loaned_to"`
	RestoredClub string    `json:"restored_club"`
	EndAt        time.Time `json:"end_at"`
}

// SweepResult is the response of a manual sweep.
type SweepResult struct {
	Checked  int            `json:"checked"`
	Reversed []LoanReversal `json:"reversed"`
}

// ErrorBody carries the failure tag and a readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
