// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/repository/file"
	"club-transfer-ledger/internal/repository/memory"
	"club-transfer-ledger/internal/repository/postgres"
	"club-transfer-ledger/internal/repository/redis"
	"club-transfer-ledger/internal/repository/s3"
	"club-transfer-ledger/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	SnapshotInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendFile:
		return file.New(log, cfg.Storage.File), nil
	case config.BackendSQLite:
		return sqlite.New(log, cfg.Storage.SQLite), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendRedis:
		return redis.New(log, cfg.Redis), nil
	case config.BackendS3:
		return s3.New(log, cfg.S3), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
