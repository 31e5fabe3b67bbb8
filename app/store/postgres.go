package store

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
)

// PostgresBackend persists entries in a single key/value table. The whole
// collection is written per entry, so no relational schema is needed.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend connects with the given DSN and ensures the entries
// table exists.
func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS store_entries (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PostgresBackend{db: db}, nil
}

func (b *PostgresBackend) Load(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM store_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (b *PostgresBackend) Save(key string, value []byte) error {
	_, err := b.db.Exec(`INSERT INTO store_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	return err
}

func (b *PostgresBackend) Close() error {
	return b.db.Close()
}
