package domain

import (
	"context"
	"time"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/ledger"
	"club-transfer-ledger/internal/metrics"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	ledger  *ledger.Store
	timeout time.Duration
	now     func() time.Time
	metrics *metrics.Metrics
}

// Option customizes a Usecase.
type Option func(*Usecase)

// WithClock replaces time.Now, which decides loan end dates and expiry.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// WithMetrics records operation outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *Usecase) { u.metrics = m }
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	store *ledger.Store,
	timeout time.Duration,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		log:     log,
		ledger:  store,
		timeout: timeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (u *Usecase) observe(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = entities.Kind(err)
	}
	u.metrics.ObserveOperation(operation, outcome)
}
