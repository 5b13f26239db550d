package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType type de mouvement de stock.
type MovementType string

const (
	MovementIn  MovementType = "ENTREE" // réception fournisseur
	MovementOut MovementType = "SORTIE" // vente
)

// Valid indique si le type de mouvement est connu.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// TypeMovement valeur du discriminant "type" pour les mouvements.
const TypeMovement = "mouvement"

// Movement est une écriture du journal de stock. Le journal est strictement
// append-only : aucun mouvement n'est modifié ni supprimé après création,
// c'est ce qui rend la dérivation du stock par repli valide et auditable.
//
// UnitPrice capture le prix au moment du mouvement (coût d'achat pour une
// ENTREE, prix de vente effectif pour une SORTIE), indépendamment du prix de
// vente courant du produit.
type Movement struct {
	ID         string          `json:"_id"`
	Type       string          `json:"type"` // toujours "mouvement"
	Kind       MovementType    `json:"type_mouvement"`
	Date       time.Time       `json:"date"`
	ProductID  string          `json:"id_produit"`
	Quantity   int64           `json:"quantite"`
	UnitPrice  decimal.Decimal `json:"prix_unitaire_XOF"`
	SupplierID string          `json:"id_fournisseur,omitempty"` // pertinent pour ENTREE uniquement
	Note       string          `json:"note,omitempty"`
	Synced     bool            `json:"synchronise"` // réservé à une future synchro hors-ligne, inerte
}
