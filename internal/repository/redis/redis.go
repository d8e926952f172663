// Package redis implements the repository as a single redis string key.
package redis

import (
	"context"
	"errors"
	"fmt"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/repository/document"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis stores the ledger document under one key without expiry.
type Redis struct {
	log    *zap.SugaredLogger
	cfg    config.RedisConfig
	client *goredis.Client
}

// New creates a redis repository instance.
func New(log *zap.SugaredLogger, cfg config.RedisConfig) *Redis {
	return &Redis{
		log: log.Named("repo.redis"),
		cfg: cfg,
	}
}

// OnStart connects and pings the server.
func (r *Redis) OnStart(ctx context.Context) error {
	client := goredis.NewClient(&goredis.Options{
		Addr:         r.cfg.Addr,
		Password:     r.cfg.Password,
		DB:           r.cfg.DB,
		ReadTimeout:  r.cfg.Timeout,
		WriteTimeout: r.cfg.Timeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("ping redis: %w", err)
	}

	r.client = client
	r.log.Infow("redis ready", "addr", r.cfg.Addr, "key", r.cfg.Key)
	return nil
}

// OnStop closes the client.
func (r *Redis) OnStop(_ context.Context) error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// Load reads the document key.
func (r *Redis) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	payload, err := r.client.Get(ctx, r.cfg.Key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return entities.Snapshot{}, false, nil
	}
	if err != nil {
		return entities.Snapshot{}, false, fmt.Errorf("get %s: %w", r.cfg.Key, err)
	}

	snapshot, err := document.Decode(payload)
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

// Save overwrites the document key.
func (r *Redis) Save(ctx context.Context, snapshot entities.Snapshot) error {
	payload, err := document.Encode(snapshot)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.cfg.Key, payload, 0).Err(); err != nil {
		r.log.Errorw("failed to save ledger document", "error", err, "key", r.cfg.Key)
		return fmt.Errorf("set %s: %w", r.cfg.Key, err)
	}
	return nil
}
