package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// AppendMovementRequest ajout d'une écriture au journal. Date vaut
// maintenant si omise. Aucune opération de modification ou de suppression
// de mouvement n'existe.
type AppendMovementRequest struct {
	Kind       entity.MovementType `json:"type_mouvement"`
	Date       *time.Time          `json:"date"`
	ProductID  string              `json:"id_produit"`
	Quantity   int64               `json:"quantite"`
	UnitPrice  decimal.Decimal     `json:"prix_unitaire_XOF"`
	SupplierID string              `json:"id_fournisseur"`
	Note       string              `json:"note"`
	Synced     bool                `json:"synchronise"`
}

// MovementResponse mouvement retourné par l'API.
type MovementResponse struct {
	Movement entity.Movement `json:"mouvement"`
	Warning  string          `json:"avertissement,omitempty"`
}
