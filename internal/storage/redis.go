package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ErebusAres/DriftShell/pkg/state"
)

// RedisStore keeps the save record in Redis under a slot-scoped key, for
// setups where the shell roams between machines.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

var _ SaveStore = (*RedisStore)(nil)

// NewRedisStore connects to addr and scopes the record under the given save
// slot. Keys use a save: prefix.
func NewRedisStore(addr, slot string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		key:    "save:" + slot,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Save(ctx context.Context, rec *state.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal save record: %w", err)
	}

	if err := r.client.Set(ctx, r.key, string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to save record", "key", r.key, "error", err)
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context) (*state.Record, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSave
		}
		r.logger.Error("Failed to load record", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	var rec state.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		r.logger.Error("Malformed save record", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save record: %w", err)
	}
	return &rec, nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}
