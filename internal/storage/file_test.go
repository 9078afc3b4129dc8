package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErebusAres/DriftShell/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecord() *state.Record {
	s := state.New("wren")
	s.AddItem("badge.sig")
	s.SetFlag("trace_open")
	s.Discover("market.node")
	s.LogEvent("Entered hub.home")
	return state.Snapshot(s)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewFileStore(path, testLogger())
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, store.Save(ctx, rec))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestFileStoreMissingSave(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "save.json"), testLogger())

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestFileStoreMalformedSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0o644))

	store := NewFileStore(path, testLogger())
	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSave)
}

func TestFileStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewFileStore(path, testLogger())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testRecord()))

	second := testRecord()
	second.Location = "weaver.den"
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "weaver.den", loaded.Location)
}
