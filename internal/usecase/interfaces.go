package usecase

import (
	"context"

	"club-transfer-ledger/internal/entities"
)

// PlayerUsecaseInterface abstracts player registry operations for delivery layer.
type PlayerUsecaseInterface interface {
	Register(ctx context.Context, player entities.Player) (*entities.Player, error)
	RemovePlayer(ctx context.Context, playerID string) (*entities.Player, error)
	ListPlayers(ctx context.Context) ([]entities.PlayerView, error)
}

// TransferUsecaseInterface abstracts permanent transfers.
type TransferUsecaseInterface interface {
	Transfer(ctx context.Context, playerID, toClub string, price int64) (*entities.TransferResult, error)
}

// LoanUsecaseInterface abstracts loan issuance and expiry.
type LoanUsecaseInterface interface {
	Loan(ctx context.Context, playerID, toClub, duration string) (*entities.LoanResult, error)
	RunExpirySweepOnce(ctx context.Context) (entities.SweepResult, error)
}

// BudgetUsecaseInterface abstracts club budget reads.
type BudgetUsecaseInterface interface {
	ListBudgets(ctx context.Context) ([]entities.Club, error)
}
