package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ErebusAres/DriftShell/pkg/state"
)

// FileStore keeps the save record in a single JSON document. Writes go
// through a temp file and rename so a crash never leaves a torn save.
type FileStore struct {
	path   string
	logger *slog.Logger
}

var _ SaveStore = (*FileStore)(nil)

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (f *FileStore) Save(ctx context.Context, rec *state.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal save record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".save-*")
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace save file: %w", err)
	}

	f.logger.Debug("Save written", "path", f.path, "bytes", len(data))
	return nil
}

func (f *FileStore) Load(ctx context.Context) (*state.Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var rec state.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		f.logger.Error("Malformed save file", "path", f.path, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save record: %w", err)
	}
	return &rec, nil
}

func (f *FileStore) Close() error { return nil }
