package dto

import (
	"github.com/shopspring/decimal"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// CreateProductRequest création d'un produit. Actif vaut true si omis.
type CreateProductRequest struct {
	Name        string          `json:"nom"`
	Description string          `json:"description"`
	Category    entity.Category `json:"categorie"`
	SalePrice   decimal.Decimal `json:"prix_vente_XOF"`
	AlertLevel  int64           `json:"seuil_alerte_stock"`
	Active      *bool           `json:"actif"`
}

// UpdateProductRequest mise à jour partielle typée : seuls les champs non nil
// sont appliqués. Tout champ JSON inconnu est rejeté au décodage, jamais
// fusionné silencieusement.
type UpdateProductRequest struct {
	Name        *string          `json:"nom"`
	Description *string          `json:"description"`
	Category    *entity.Category `json:"categorie"`
	SalePrice   *decimal.Decimal `json:"prix_vente_XOF"`
	AlertLevel  *int64           `json:"seuil_alerte_stock"`
	Active      *bool            `json:"actif"`
}

// ProductResponse produit retourné par l'API, avec avertissement de
// persistance éventuel (la mutation en mémoire a réussi mais pas la
// sauvegarde).
type ProductResponse struct {
	Product entity.Product `json:"produit"`
	Warning string         `json:"avertissement,omitempty"`
}
