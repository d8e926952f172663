package usecase

import (
	"time"

	"club-transfer-ledger/internal/ledger"
	"club-transfer-ledger/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	PlayerUsecaseInterface
	TransferUsecaseInterface
	LoanUsecaseInterface
	BudgetUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, store *ledger.Store, timeout time.Duration, opts ...domain.Option) InterfaceUsecase {
	return domain.New(log, store, timeout, opts...)
}
