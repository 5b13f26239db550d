// Package storage fournit les implémentations du port de persistance du
// snapshot : mémoire (tests), fichier JSON et SQLite. Chaque backend charge
// et sauvegarde l'agrégat entier comme un seul document sérialisé.
package storage

import (
	"sync"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// Memory backend en mémoire pure, sans durabilité. Utilisé par les tests et
// comme mode dégradé explicite.
type Memory struct {
	mu   sync.Mutex
	snap *entity.Snapshot
}

// NewMemory construit un backend mémoire vide.
func NewMemory() *Memory {
	return &Memory{}
}

// Load retourne le dernier snapshot sauvegardé, nil s'il n'y en a pas.
func (m *Memory) Load() (*entity.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.Clone(), nil
}

// Save retient une copie du snapshot.
func (m *Memory) Save(snapshot *entity.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snapshot.Clone()
	return nil
}
