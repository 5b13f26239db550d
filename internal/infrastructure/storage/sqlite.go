package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// SQLite backend stockant le snapshot comme un unique document JSON dans une
// table à une ligne. WAL activé pour une meilleure récupération après crash.
// Utiliser ":memory:" pour une base éphémère.
type SQLite struct {
	db *sql.DB
}

// NewSQLite ouvre (ou crée) la base et son schéma.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ouvrir la base: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		document   TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrer le schéma: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close ferme la base.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load lit le document unique. (nil, nil) si rien n'a encore été sauvegardé.
func (s *SQLite) Load() (*entity.Snapshot, error) {
	var raw string
	err := s.db.QueryRow(`SELECT document FROM snapshots WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lire le snapshot: %w", err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("décoder le snapshot: %w", err)
	}
	return &snap, nil
}

// Save remplace le document unique (upsert).
func (s *SQLite) Save(snapshot *entity.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoder le snapshot: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, document, updated_at) VALUES (1, ?, datetime('now'))
		ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		string(raw))
	if err != nil {
		return fmt.Errorf("écrire le snapshot: %w", err)
	}
	return nil
}
