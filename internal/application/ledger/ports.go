package ledger

import "github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"

// Backend est le port de persistance du snapshot : un seul document
// sérialisé, chargé au démarrage et réécrit en entier après chaque mutation.
// Load retourne (nil, nil) quand aucun snapshot n'a encore été sauvegardé.
type Backend interface {
	Load() (*entity.Snapshot, error)
	Save(snapshot *entity.Snapshot) error
}
