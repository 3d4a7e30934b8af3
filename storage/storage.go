// Package storage keeps one World document per game id.
package storage

import (
	"context"
	"errors"
	"fmt"

	"colonists/game"
	"colonists/result"
)

// ErrNotFound is returned for a game id that was never created.
var ErrNotFound = errors.New("game not found")

// ErrExists is returned when creating a game id twice.
var ErrExists = errors.New("game already exists")

// Repository loads and stores worlds. Implementations are safe for
// concurrent use but do not serialize a read-modify-write; callers do.
type Repository interface {
	GetWorld(ctx context.Context, id string) result.Result[game.World]
	CreateGame(ctx context.Context, id string, w game.World) error
	UpdateGame(ctx context.Context, id string, w game.World) error
	Close() error
}

// Open builds the repository named by driver. dsn is the database path for
// sqlite and the snapshot directory for file.
func Open(driver, dsn string) (Repository, error) {
	switch driver {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		db, err := OpenSQLite(dsn)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "file":
		fs, err := NewFileStore(dsn)
		if err != nil {
			return nil, err
		}
		return fs, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
