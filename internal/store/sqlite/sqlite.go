// Package sqlite provides SQLite database storage for burnr.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/burnr/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store implements the store.Store interface using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	migrator := NewMigrator(db)
	if err := migrator.MigrateUp(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// SaveSession inserts a finished meeting session. A missing UID is assigned
// before the insert.
func (s *Store) SaveSession(sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.UID == "" {
		sess.UID = uuid.New().String()
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (uid, description, attendees, hourly_rate, currency, duration, cost, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.UID,
		sess.Description,
		sess.Attendees,
		sess.HourlyRate,
		sess.Currency,
		sess.Duration,
		sess.Cost,
		sess.StartedAt.UnixMilli(),
		sess.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	return nil
}

// GetAllSessions returns every recorded session, newest first.
func (s *Store) GetAllSessions() ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT uid, description, attendees, hourly_rate, currency, duration, cost, started_at, ended_at
		FROM sessions
		ORDER BY ended_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []*model.Session

	for rows.Next() {
		var (
			sess      model.Session
			startedAt int64
			endedAt   int64
		)

		if err := rows.Scan(
			&sess.UID,
			&sess.Description,
			&sess.Attendees,
			&sess.HourlyRate,
			&sess.Currency,
			&sess.Duration,
			&sess.Cost,
			&startedAt,
			&endedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		sess.StartedAt = time.UnixMilli(startedAt)
		sess.EndedAt = time.UnixMilli(endedAt)

		sessions = append(sessions, &sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// RemoveSessionByUID deletes one session from the history.
func (s *Store) RemoveSessionByUID(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec(`DELETE FROM sessions WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return fmt.Errorf("session %s not found", uid)
	}

	return nil
}

// GetConfig returns the stored configuration, or the defaults when nothing
// has been saved yet.
func (s *Store) GetConfig() (*model.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string

	err := s.db.QueryRow(`SELECT data FROM config WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		cfg := model.DefaultConfig()
		return &cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("querying config: %w", err)
	}

	var cfg model.Config
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig stores the configuration, replacing any previous value.
func (s *Store) SaveConfig(cfg *model.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO config (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data`, string(data))
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	return nil
}
