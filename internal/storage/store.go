// Package storage persists the player's save record. The target (file path,
// redis address, bolt database) is injected at construction; nothing in here
// reads package-level globals, so tests can redirect storage freely.
package storage

import (
	"context"
	"errors"

	"github.com/ErebusAres/DriftShell/pkg/state"
)

// ErrNoSave is returned by Load when no save record exists yet.
var ErrNoSave = errors.New("no save record")

// SaveStore reads and writes the single save record of a session. Load is
// all-or-nothing: on any failure the caller's in-memory state is untouched.
type SaveStore interface {
	Save(ctx context.Context, rec *state.Record) error
	Load(ctx context.Context) (*state.Record, error)
	Close() error
}
