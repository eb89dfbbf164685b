// Package sqlite provides the session-token persistence adapter backed by
// SQLite.
//
// The store holds only the opaque backend access token keyed by web
// session id. There is no expiry column: token validity is determined
// reactively by backend responses, never tracked locally.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	access_token TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`

// Store provides SQLite-backed persistence for web session tokens.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a session SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sessions table: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get loads the access token for a session id.
func (s *Store) Get(ctx context.Context, sessionID string) (string, bool, error) {
	if s == nil || s.sqlDB == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", false, nil
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT access_token FROM sessions WHERE id = ?`, sessionID)

	var token string
	if err := row.Scan(&token); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get session: %w", err)
	}
	return token, true, nil
}

// Set upserts the access token for a session id.
func (s *Store) Set(ctx context.Context, sessionID, accessToken string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if accessToken == "" {
		return fmt.Errorf("access token is required")
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO sessions (id, access_token, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET access_token = excluded.access_token`,
		sessionID, accessToken, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Clear removes a session id. Clearing an unknown id is not an error.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}

	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
