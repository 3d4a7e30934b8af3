package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"colonists/game"
	"colonists/result"
)

// SQLite stores each World as a JSON document in a single table.
type SQLite struct {
	conn *sqlx.DB
}

type gameRow struct {
	ID        string `db:"id"`
	World     string `db:"world"`
	State     string `db:"state"`
	UpdatedAt int64  `db:"updated_at"`
}

// OpenSQLite opens or creates the database at path. ":memory:" gives a
// private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	if path == ":memory:" {
		dsn = path
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == ":memory:" {
		// Every connection would get its own empty database.
		conn.SetMaxOpenConns(1)
	}

	db := &SQLite{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func (db *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		world TEXT NOT NULL,
		state TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_games_state ON games(state);
	`
	_, err := db.conn.Exec(schema)
	return err
}

func (db *SQLite) Close() error {
	return db.conn.Close()
}

func (db *SQLite) GetWorld(ctx context.Context, id string) result.Result[game.World] {
	var row gameRow
	err := db.conn.GetContext(ctx, &row, "SELECT id, world, state, updated_at FROM games WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return result.FailWith[game.World](fmt.Errorf("%w: %s", ErrNotFound, id))
	}
	if err != nil {
		return result.FailWith[game.World](fmt.Errorf("load game %s: %w", id, err))
	}
	var w game.World
	if err := json.Unmarshal([]byte(row.World), &w); err != nil {
		return result.FailWith[game.World](fmt.Errorf("decode game %s: %w", id, err))
	}
	return result.Success(w)
}

func (db *SQLite) CreateGame(ctx context.Context, id string, w game.World) error {
	row, err := newRow(id, w)
	if err != nil {
		return err
	}
	res, err := db.conn.NamedExecContext(ctx, `
		INSERT INTO games (id, world, state, updated_at)
		VALUES (:id, :world, :state, :updated_at)
		ON CONFLICT(id) DO NOTHING`, row)
	if err != nil {
		return fmt.Errorf("create game %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrExists, id)
	}
	return nil
}

func (db *SQLite) UpdateGame(ctx context.Context, id string, w game.World) error {
	row, err := newRow(id, w)
	if err != nil {
		return err
	}
	res, err := db.conn.NamedExecContext(ctx, `
		UPDATE games SET world = :world, state = :state, updated_at = :updated_at
		WHERE id = :id`, row)
	if err != nil {
		return fmt.Errorf("update game %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// GameIDs lists the stored games in a given state, all of them when state
// is empty.
func (db *SQLite) GameIDs(ctx context.Context, state game.GameState) ([]string, error) {
	var ids []string
	var err error
	if state == "" {
		err = db.conn.SelectContext(ctx, &ids, "SELECT id FROM games ORDER BY updated_at")
	} else {
		err = db.conn.SelectContext(ctx, &ids, "SELECT id FROM games WHERE state = ? ORDER BY updated_at", string(state))
	}
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return ids, nil
}

func newRow(id string, w game.World) (gameRow, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return gameRow{}, fmt.Errorf("encode game %s: %w", id, err)
	}
	return gameRow{
		ID:        id,
		World:     string(data),
		State:     string(w.GameState),
		UpdatedAt: time.Now().UnixNano(),
	}, nil
}
