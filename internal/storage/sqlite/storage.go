package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface.
// It is the default backend for the CLI: a single local file, no server.
// Sessions are stored as JSON documents keyed by id, the same shape the
// redis backend uses, since the storage contract is key-value.
type Storage struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	created_at_ns INTEGER NOT NULL,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// New opens (creating if needed) the database at the given path
func New(path string) (*Storage, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// Upsert keeps created_at_ns from the first save so resaving never
	// reorders the collection
	query := `INSERT INTO sessions (id, created_at_ns, data) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`
	_, err = s.db.ExecContext(ctx, query, string(session.ID), session.CreatedAt.UnixNano(), string(data))
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	var data string
	query := `SELECT data FROM sessions WHERE id = ?`
	err := s.db.QueryRowContext(ctx, query, string(id)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, string(id))
	return err
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.Session, error) {
	query := `SELECT data FROM sessions ORDER BY created_at_ns DESC, rowid DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*model.Session
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var session model.Session
		if err := json.Unmarshal([]byte(data), &session); err != nil {
			return nil, err
		}
		result = append(result, &session)
	}
	return result, rows.Err()
}

func (s *Storage) SessionExists(ctx context.Context, id model.SessionID) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, string(id)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Settings helpers

func (s *Storage) getSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Storage) setSetting(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

// Preference operations

func (s *Storage) GetPreference(ctx context.Context, key string) (bool, error) {
	value, ok, err := s.getSetting(ctx, "pref:"+key)
	if err != nil || !ok {
		return false, err
	}
	return value == "true", nil
}

func (s *Storage) SetPreference(ctx context.Context, key string, value bool) error {
	str := "false"
	if value {
		str = "true"
	}
	return s.setSetting(ctx, "pref:"+key, str)
}

// App state operations

const appStateKey = "app_state"

func (s *Storage) GetAppState(ctx context.Context) (model.AppState, error) {
	value, ok, err := s.getSetting(ctx, appStateKey)
	if err != nil {
		return model.AppState{}, err
	}
	if !ok {
		return model.HomeState(), nil
	}

	var state model.AppState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		return model.AppState{}, err
	}
	return state, nil
}

func (s *Storage) SaveAppState(ctx context.Context, state model.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.setSetting(ctx, appStateKey, string(data))
}
