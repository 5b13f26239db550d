package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// File backend fichier JSON : le snapshot entier est réécrit à chaque
// sauvegarde, via un fichier temporaire renommé pour ne jamais laisser un
// document tronqué.
type File struct {
	path string
}

// NewFile construit le backend et crée le répertoire parent si besoin.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("créer le répertoire de données: %w", err)
	}
	return &File{path: path}, nil
}

// Load lit le snapshot depuis le disque. (nil, nil) si le fichier n'existe
// pas encore.
func (f *File) Load() (*entity.Snapshot, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lire %s: %w", f.path, err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("décoder %s: %w", f.path, err)
	}
	return &snap, nil
}

// Save sérialise et écrit le snapshot.
func (f *File) Save(snapshot *entity.Snapshot) error {
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoder le snapshot: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("écrire %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("renommer %s: %w", tmp, err)
	}
	return nil
}
