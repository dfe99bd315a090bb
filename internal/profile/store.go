// Package profile provides the SQLite-backed profiles table: one row per
// identity, carrying the display nickname and the physics unlock flag.
package profile

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/azurtoy/voidstation/internal/apperr"
	sqlite3 "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
	id                  TEXT PRIMARY KEY,
	email               TEXT NOT NULL DEFAULT '',
	nickname            TEXT NOT NULL DEFAULT '',
	lower_nickname      TEXT NOT NULL UNIQUE,
	is_physics_unlocked INTEGER NOT NULL DEFAULT 0,
	created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_profiles_lower_nickname ON profiles(lower_nickname);
`

// Profile is one row of the profiles table.
type Profile struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Nickname          string    `json:"nickname"`
	IsPhysicsUnlocked bool      `json:"is_physics_unlocked"`
	CreatedAt         time.Time `json:"created_at"`
}

// Store wraps a sql.DB with profile-specific operations.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*Store, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("profile: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("profile: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("profile: apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Create inserts a new profile row. The lower_nickname UNIQUE constraint
// makes nickname claims first-write-wins even under concurrent signups;
// a losing insert reports apperr.ErrValidation.
func (s *Store) Create(p Profile) error {
	_, err := s.conn.Exec(`
		INSERT INTO profiles (id, email, nickname, lower_nickname, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.Email, p.Nickname, strings.ToLower(p.Nickname), time.Now().UTC())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("profile: nickname already taken: %w", apperr.ErrValidation)
		}
		return fmt.Errorf("profile: insert: %w", err)
	}
	return nil
}

// Get returns the profile for the given identity id, or apperr.ErrNotFound.
func (s *Store) Get(id string) (*Profile, error) {
	row := s.conn.QueryRow(`
		SELECT id, email, nickname, is_physics_unlocked, created_at
		FROM profiles WHERE id = ?
	`, id)

	var p Profile
	var unlocked int
	if err := row.Scan(&p.ID, &p.Email, &p.Nickname, &unlocked, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("profile: get: %w", err)
	}
	p.IsPhysicsUnlocked = unlocked != 0
	return &p, nil
}

// Unlock durably sets is_physics_unlocked for the given identity. The
// update is a single unconditional row write keyed by id, so repeating it
// is idempotent. Unknown ids report apperr.ErrNotFound.
func (s *Store) Unlock(id string) error {
	res, err := s.conn.Exec(`UPDATE profiles SET is_physics_unlocked = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("profile: unlock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile: unlock rows affected: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// NicknameTaken reports whether any profile already claimed the nickname,
// compared case-insensitively.
func (s *Store) NicknameTaken(nickname string) (bool, error) {
	row := s.conn.QueryRow(`
		SELECT COUNT(*) FROM profiles WHERE lower_nickname = ?
	`, strings.ToLower(nickname))

	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("profile: nickname lookup: %w", err)
	}
	return n > 0, nil
}
