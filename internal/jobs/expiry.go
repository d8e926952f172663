// Package jobs runs background work that is triggered by time rather than by
// requests.
package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/metrics"

	"go.uber.org/zap"
)

// ErrSweepInProgress is returned by RunOnce while another sweep is running.
var ErrSweepInProgress = errors.New("expiry sweep already in progress")

// LoanSweeper is the engine operation driven by the job.
type LoanSweeper interface {
	RunExpirySweepOnce(ctx context.Context) (entities.SweepResult, error)
}

// ExpirySweeper reverses expired loans on a fixed interval after an initial delay.
type ExpirySweeper struct {
	log     *zap.SugaredLogger
	sweeper LoanSweeper
	metrics *metrics.Metrics
	cfg     config.SweeperConfig

	inFlight atomic.Bool

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// NewExpirySweeper creates the job; nothing runs until Start.
func NewExpirySweeper(log *zap.SugaredLogger, sweeper LoanSweeper, m *metrics.Metrics, cfg config.SweeperConfig) *ExpirySweeper {
	return &ExpirySweeper{
		log:     log.Named("jobs.expiry"),
		sweeper: sweeper,
		metrics: m,
		cfg:     cfg,
	}
}

// Start launches the background loop. Calling Start twice is a no-op.
func (s *ExpirySweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})

	s.wg.Add(1)
	go s.run(s.stopCh)
	s.log.Infow("expiry sweeper started", "interval", s.cfg.Interval, "initial_delay", s.cfg.InitialDelay)
}

// Stop ends the loop and waits for a running sweep to finish.
func (s *ExpirySweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	s.log.Infow("expiry sweeper stopped")
}

// IsRunning reports whether the loop is active.
func (s *ExpirySweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *ExpirySweeper) run(stopCh <-chan struct{}) {
	defer s.wg.Done()

	delay := time.NewTimer(s.cfg.InitialDelay)
	defer delay.Stop()
	select {
	case <-delay.C:
		s.tick()
	case <-stopCh:
		return
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-stopCh:
			return
		}
	}
}

func (s *ExpirySweeper) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, ErrSweepInProgress) {
		s.log.Errorw("scheduled expiry sweep failed", "error", err)
	}
}

// RunOnce performs one sweep unless another one is in flight. It backs both
// the ticker and manual triggers.
func (s *ExpirySweeper) RunOnce(ctx context.Context) (entities.SweepResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Warnw("expiry sweep skipped, previous run still in flight")
		s.metrics.ObserveSweep(metrics.SweepSkipped, 0)
		return entities.SweepResult{}, ErrSweepInProgress
	}
	defer s.inFlight.Store(false)

	start := time.Now()
	res, err := s.sweeper.RunExpirySweepOnce(ctx)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveSweep(metrics.SweepError, elapsed)
		return res, err
	}
	s.metrics.ObserveSweep(metrics.SweepOK, elapsed)
	s.log.Infow("expiry sweep finished",
		"checked", res.Checked,
		"reversed", len(res.Reversed),
		"duration", elapsed,
	)
	return res, nil
}
