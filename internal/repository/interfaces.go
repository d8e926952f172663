// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"club-transfer-ledger/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// SnapshotInterface stores the ledger as one document that is fully
// overwritten on every save.
type SnapshotInterface interface {
	// Load returns the stored snapshot; ok is false when nothing has been stored yet.
	Load(ctx context.Context) (snapshot entities.Snapshot, ok bool, err error)
	Save(ctx context.Context, snapshot entities.Snapshot) error
}
