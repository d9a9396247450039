package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PostgresStore keeps each collection as one JSONB document in a
// two-column table, preserving the whole-snapshot semantics of the
// file store. Open the *sql.DB with the pgx stdlib driver.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the collections table if it does not exist yet.
func (s *PostgresStore) Init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS collections (
        name TEXT PRIMARY KEY,
        doc JSONB NOT NULL
    )`)
	if err != nil {
		return fmt.Errorf("init collections table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(name string, out any) error {
	var raw []byte
	err := s.db.QueryRow(`SELECT doc FROM collections WHERE name = $1`, name).Scan(&raw)
	if err != nil {
		// no row yet, or the store is unreadable: empty collection
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		var invalid *json.InvalidUnmarshalError
		if errors.As(err, &invalid) {
			return err
		}
		return nil
	}
	return nil
}

func (s *PostgresStore) Save(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	_, err = s.db.Exec(`INSERT INTO collections (name, doc) VALUES ($1, $2)
        ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc`, name, raw)
	if err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}
