// Package localstore is the durable key-value storage of the front-end:
// JSON snapshots of the session and the user settings, read once at startup
// and rewritten on every mutation of their domain.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

const (
	keySession  = "user"
	keySettings = "settings"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the local database at path and brings its
// schema up to date. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); path != ":memory:" && dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Session returns the stored session snapshot. Absence and corruption both
// read as "no session": a broken snapshot is never fatal.
func (s *Store) Session(ctx context.Context) (core.Session, bool) {
	var sess core.Session
	if !s.get(ctx, keySession, &sess) {
		return core.Session{}, false
	}
	return sess, true
}

func (s *Store) PutSession(ctx context.Context, sess core.Session) error {
	return s.put(ctx, keySession, sess)
}

func (s *Store) DeleteSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, keySession)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Settings returns the stored settings snapshot, reporting whether one was
// present and well formed.
func (s *Store) Settings(ctx context.Context) (core.Settings, bool) {
	var set core.Settings
	if !s.get(ctx, keySettings, &set) {
		return core.Settings{}, false
	}
	return set, true
}

func (s *Store) PutSettings(ctx context.Context, set core.Settings) error {
	return s.put(ctx, keySettings, set)
}

// Token returns the bearer token of the stored session, if any. The API
// client reads it before every request.
func (s *Store) Token() string {
	sess, ok := s.Session(context.Background())
	if !ok {
		return ""
	}
	return sess.Token
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string, v any) bool {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to read local snapshot", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.WarnContext(ctx, "Discarding corrupt local snapshot", "key", key, "error", err)
		return false
	}
	return true
}
