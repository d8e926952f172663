// Package memory provides an in-process repository for tests and ephemeral
// environments. It keeps the encoded document so that every save and load
// goes through the same codec as the durable backends.
package memory

import (
	"context"
	"sync"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/repository/document"
)

// Memory holds the last saved document.
type Memory struct {
	mu      sync.Mutex
	payload []byte
	saves   int
	saveErr error
}

// New returns an empty memory repository.
func New() *Memory {
	return &Memory{}
}

// OnStart is a no-op.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// Load decodes the last saved document.
func (m *Memory) Load(_ context.Context) (entities.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.payload == nil {
		return entities.Snapshot{}, false, nil
	}
	s, err := document.Decode(m.payload)
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	return s, true, nil
}

// Save encodes and keeps the snapshot, or fails with the error set by FailSaves.
func (m *Memory) Save(_ context.Context, s entities.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := document.Encode(s)
	if err != nil {
		return err
	}
	m.payload = data
	m.saves++
	return nil
}

// FailSaves makes every following Save return err; nil restores normal saves.
func (m *Memory) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Saves returns the number of successful saves.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
