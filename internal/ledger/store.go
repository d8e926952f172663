// Package ledger owns the authoritative in-memory ledger state and commits
// every change to durable storage before publishing it.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/metrics"
	"club-transfer-ledger/internal/repository"

	"go.uber.org/zap"
)

// ErrNotLoaded is returned when the store is used before Load.
var ErrNotLoaded = errors.New("ledger not loaded")

// Store holds clubs, players and loans. Update calls are serialized; the
// persist step inside Update is the commit point.
type Store struct {
	mu      sync.RWMutex
	log     *zap.SugaredLogger
	repo    repository.SnapshotInterface
	metrics *metrics.Metrics
	state   entities.Snapshot
	loaded  bool
}

// New constructs an empty store; call Load before use.
func New(log *zap.SugaredLogger, repo repository.SnapshotInterface, m *metrics.Metrics) *Store {
	return &Store{
		log:     log.Named("ledger"),
		repo:    repo,
		metrics: m,
	}
}

// Load reads the stored snapshot or falls back to the seed clubs. A corrupt
// or unreadable snapshot is returned as an error and must stop startup.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrCorruptSnapshot) {
			return err
		}
		return fmt.Errorf("%w: load: %w", entities.ErrPersistence, err)
	}
	if !ok {
		snapshot = entities.SeedSnapshot()
		s.log.Infow("no stored ledger, using seed clubs", "clubs", len(snapshot.Budgets))
	} else {
		s.log.Infow("ledger loaded",
			"clubs", len(snapshot.Budgets),
			"players", len(snapshot.Players),
			"loans", len(snapshot.Loans),
		)
	}

	s.state = snapshot
	s.loaded = true
	return nil
}

// Update runs fn against a working copy of the state. When fn succeeds and
// changed something, the copy is validated, persisted and then published.
// Any failure leaves the published state untouched.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}

	tx := &Tx{state: s.state.Clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if !tx.changed {
		return nil
	}
	if err := tx.state.Validate(); err != nil {
		return fmt.Errorf("refusing to commit: %w", err)
	}

	start := time.Now()
	err := s.repo.Save(ctx, tx.state)
	s.metrics.ObservePersist(time.Since(start))
	if err != nil {
		s.log.Errorw("failed to persist ledger, changes discarded", "error", err)
		return fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}

	s.state = tx.state
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() (entities.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return entities.Snapshot{}, ErrNotLoaded
	}
	return s.state.Clone(), nil
}
