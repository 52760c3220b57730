// Package persist saves and restores a game: a JSON snapshot of the world
// and session kept in one of several interchangeable stores.
package persist

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"glass-oak/internal/config"
)

var (
	// ErrNoSave wraps every failure to produce a loadable game.
	ErrNoSave = errors.New("no saved game")
	// ErrNotFound is returned by a Store when the slot holds nothing.
	ErrNotFound = errors.New("slot not found")
	// ErrUnknownBackend is returned by Open for an unrecognised store name.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Store keeps one opaque document per save slot.
type Store interface {
	Save(ctx context.Context, slot string, doc []byte) error
	Load(ctx context.Context, slot string) ([]byte, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Open returns the store named by cfg.Store, rooted in cfg.DataDir.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Store)) {
	case BackendFile, "":
		return NewFileStore(cfg.DataDir)
	case BackendBolt:
		return OpenBolt(filepath.Join(cfg.DataDir, "saves.db"))
	case BackendSQLite:
		return OpenSQLite(ctx, filepath.Join(cfg.DataDir, "saves.sqlite"))
	case BackendPostgres:
		return OpenPostgres(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Store)
	}
}

func checkSlot(slot string) error {
	if strings.TrimSpace(slot) == "" {
		return fmt.Errorf("save slot is required")
	}
	return nil
}
