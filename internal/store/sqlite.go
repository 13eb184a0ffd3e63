// internal/store/sqlite.go
//
// SQLite-backed audit Store.
// Responsibilities:
//   - Opening the database file with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Writing and reading session flip logs.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/game"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite stores audit records in a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at path and migrates it.
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// migrate applies every embedded migrations/*.sql file in lexical order,
// each in its own transaction, skipping names already in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save replaces the session row and its flips in one transaction.
func (s *SQLite) Save(ctx context.Context, r Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
        INSERT INTO sessions (id, started_at, finished_at)
        VALUES (?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            started_at = excluded.started_at,
            finished_at = excluded.finished_at`,
		r.SessionID, r.StartedAt.UnixMilli(), r.FinishedAt.UnixMilli(),
	); err != nil {
		return fmt.Errorf("upsert session %s: %w", r.SessionID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM flips WHERE session_id=?`, r.SessionID); err != nil {
		return fmt.Errorf("clear flips %s: %w", r.SessionID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO flips (session_id, seq, first_row, first_col, second_row, second_col)
        VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, m := range r.Moves {
		if _, err := stmt.ExecContext(ctx, r.SessionID, i,
			m.First.Row, m.First.Col, m.Second.Row, m.Second.Col); err != nil {
			return fmt.Errorf("insert flip %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Get loads one session record.
func (s *SQLite) Get(ctx context.Context, id string) (Record, error) {
	var started, finished int64
	err := s.db.QueryRowContext(ctx,
		`SELECT started_at, finished_at FROM sessions WHERE id=?`, id,
	).Scan(&started, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}

	r := Record{SessionID: id, StartedAt: time.UnixMilli(started), FinishedAt: time.UnixMilli(finished)}
	if r.Moves, err = s.moves(ctx, id); err != nil {
		return Record{}, err
	}
	return r, nil
}

// List loads records ordered by finish time, newest first.
func (s *SQLite) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, started_at, finished_at
        FROM sessions
        ORDER BY finished_at DESC, id ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}

	var out []Record
	for rows.Next() {
		var (
			r                 Record
			started, finished int64
		)
		if err := rows.Scan(&r.SessionID, &started, &finished); err != nil {
			rows.Close()
			return nil, err
		}
		r.StartedAt, r.FinishedAt = time.UnixMilli(started), time.UnixMilli(finished)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range out {
		if out[i].Moves, err = s.moves(ctx, out[i].SessionID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *SQLite) moves(ctx context.Context, id string) ([]game.Move, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT first_row, first_col, second_row, second_col
        FROM flips
        WHERE session_id=?
        ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []game.Move{}
	for rows.Next() {
		var m game.Move
		if err := rows.Scan(&m.First.Row, &m.First.Col, &m.Second.Row, &m.Second.Col); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }
