package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Le format d'échange historique sérialise les montants comme des nombres
	// JSON nus (prix_vente_XOF: 15000), pas comme des chaînes.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category catégorie de produit (énumération fermée).
type Category string

const (
	CategoryElectronique Category = "Électronique"
	CategoryPapeterie    Category = "Papeterie"
	CategoryCosmetiques  Category = "Cosmétiques"
	CategoryChaussures   Category = "Chaussures"
	CategoryFournitures  Category = "Fournitures"
	CategoryServices     Category = "Services"
)

// Categories liste des catégories valides, dans l'ordre d'affichage.
var Categories = []Category{
	CategoryElectronique,
	CategoryPapeterie,
	CategoryCosmetiques,
	CategoryChaussures,
	CategoryFournitures,
	CategoryServices,
}

// Valid indique si la catégorie appartient à l'énumération.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// TypeProduct valeur du discriminant "type" pour les produits.
const TypeProduct = "produit"

// Product représente un produit du catalogue. Le stock n'est jamais stocké
// ici : il est toujours recalculé à partir du journal de mouvements.
// Les tags JSON suivent le format d'échange historique de l'application.
type Product struct {
	ID          string          `json:"_id"`
	Type        string          `json:"type"` // toujours "produit"
	Name        string          `json:"nom"`
	Description string          `json:"description,omitempty"`
	Category    Category        `json:"categorie"`
	SalePrice   decimal.Decimal `json:"prix_vente_XOF"` // prix de vente unitaire, XOF entiers
	AlertLevel  int64           `json:"seuil_alerte_stock"`
	Active      bool            `json:"actif"`
	CreatedAt   time.Time       `json:"date_creation"`
}
