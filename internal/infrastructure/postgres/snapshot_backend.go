// Package postgres fournit un backend de persistance du snapshot dans
// PostgreSQL : l'agrégat entier est stocké comme un document JSONB dans une
// table à une ligne. Aucune garantie multi-écrivain n'est ajoutée, le
// dernier écrit gagne, comme pour les autres backends.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
	"github.com/IbrahimaISIDev/Gestion-Stocks/pkg/config"
)

// SnapshotBackend implémente ledger.Backend au-dessus d'un pool pgx.
type SnapshotBackend struct {
	pool *pgxpool.Pool
}

// New ouvre le pool, crée le schéma si besoin et construit le backend.
func New(ctx context.Context, cfg config.DBConfig) (*SnapshotBackend, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 4
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("ouvrir le pool: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		document   JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrer le schéma: %w", err)
	}
	return &SnapshotBackend{pool: pool}, nil
}

// Close ferme le pool.
func (b *SnapshotBackend) Close() {
	b.pool.Close()
}

// Load lit le document unique. (nil, nil) si rien n'a encore été sauvegardé.
func (b *SnapshotBackend) Load() (*entity.Snapshot, error) {
	var raw []byte
	err := b.pool.QueryRow(context.Background(),
		`SELECT document FROM snapshots WHERE id = 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lire le snapshot: %w", err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("décoder le snapshot: %w", err)
	}
	return &snap, nil
}

// Save remplace le document unique (upsert).
func (b *SnapshotBackend) Save(snapshot *entity.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoder le snapshot: %w", err)
	}
	_, err = b.pool.Exec(context.Background(), `
		INSERT INTO snapshots (id, document, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		raw)
	if err != nil {
		return fmt.Errorf("écrire le snapshot: %w", err)
	}
	return nil
}
