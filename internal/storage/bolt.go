package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	bolt "go.etcd.io/bbolt"

	"github.com/ErebusAres/DriftShell/pkg/state"
)

var (
	saveBucket = []byte("saves")
	saveKey    = []byte("current")
)

// BoltStore keeps the save record in a local bbolt database. Useful when a
// shared save directory is not writable as a flat file.
type BoltStore struct {
	db     *bolt.DB
	logger *slog.Logger
}

var _ SaveStore = (*BoltStore)(nil)

func NewBoltStore(path string, logger *slog.Logger) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open save database: %w", err)
	}
	return &BoltStore{db: db, logger: logger}, nil
}

func (b *BoltStore) Save(ctx context.Context, rec *state.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal save record: %w", err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(saveBucket)
		if err != nil {
			return err
		}
		return bucket.Put(saveKey, data)
	})
	if err != nil {
		b.logger.Error("Failed to save record", "error", err)
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (b *BoltStore) Load(ctx context.Context) (*state.Record, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(saveBucket)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get(saveKey); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	if data == nil {
		return nil, ErrNoSave
	}

	var rec state.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		b.logger.Error("Malformed save record", "error", err)
		return nil, fmt.Errorf("failed to unmarshal save record: %w", err)
	}
	return &rec, nil
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
