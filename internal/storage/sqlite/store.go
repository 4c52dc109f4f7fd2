// Package sqlite implements the storage Provider on a local SQLite
// database using the pure-Go modernc driver.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

// ErrNotFound is the not-found sentinel shared by every provider; the
// storage package re-exports it so callers can errors.Is against one value
// regardless of backend.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	document TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	datetime TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL,
	is_completed INTEGER NOT NULL DEFAULT 0,
	is_recurring INTEGER NOT NULL DEFAULT 0,
	recurring_pattern TEXT
);

CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	color TEXT NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS timer_presets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	duration INTEGER NOT NULL,
	break_duration INTEGER NOT NULL,
	long_break_duration INTEGER NOT NULL,
	auto_start_break INTEGER NOT NULL DEFAULT 0,
	auto_start_next_session INTEGER NOT NULL DEFAULT 0,
	sessions_until_long_break INTEGER NOT NULL,
	color TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS timer_sessions (
	id TEXT PRIMARY KEY,
	preset_id TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT,
	duration INTEGER NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	type TEXT NOT NULL,
	session_count INTEGER NOT NULL DEFAULT 0,
	interruptions TEXT NOT NULL DEFAULT '[]'
);
`

// Store is a SQLite-backed storage provider.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Seed default settings on first init only
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}
	if count == 0 {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("storage not initialized, run 'flowdeck init' first")
	}
	return s.open()
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) GetSettings() (models.Settings, error) {
	var document string
	err := s.db.QueryRow(`SELECT document FROM settings WHERE id = 1`).Scan(&document)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(document), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	document, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO settings (id, document) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET document = excluded.document`,
		string(document))
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
