package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ErebusAres/DriftShell/internal/config"
	"github.com/ErebusAres/DriftShell/internal/engine"
	"github.com/ErebusAres/DriftShell/internal/logger"
	"github.com/ErebusAres/DriftShell/internal/storage"
	"github.com/ErebusAres/DriftShell/pkg/state"
	"github.com/ErebusAres/DriftShell/pkg/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad configuration: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file so they never tear the terminal UI.
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := logger.Setup(cfg, logFile).With("session", uuid.NewString())

	store, err := openStore(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open save store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	w, err := world.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad world definition: %v\n", err)
		os.Exit(1)
	}

	st := startState(store)
	eng := engine.New(w, st, store, log)

	p := tea.NewProgram(NewUI(eng, cfg.WrapWidth), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("UI failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Session ended.")
}

func openStore(cfg *config.Config, log *slog.Logger) (storage.SaveStore, error) {
	switch cfg.Store {
	case config.StoreRedis:
		return storage.NewRedisStore(cfg.RedisAddr, cfg.SaveSlot, log), nil
	case config.StoreBolt:
		return storage.NewBoltStore(cfg.BoltPath, log)
	default:
		return storage.NewFileStore(cfg.SavePath, log), nil
	}
}

// startState offers to resume an existing save, falling back to a fresh
// state with a prompted handle. A broken save never blocks a fresh start.
func startState(store storage.SaveStore) *state.State {
	in := bufio.NewReader(os.Stdin)

	rec, err := store.Load(context.Background())
	if err == nil {
		fmt.Print("Load save? (y/N) ")
		answer, _ := in.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			return state.Restore(rec)
		}
	} else if !errors.Is(err, storage.ErrNoSave) {
		fmt.Println("Failed to load save file, starting fresh.")
	}

	fmt.Print("HANDLE? ")
	handle, _ := in.ReadString('\n')
	return state.New(strings.TrimSpace(handle))
}
