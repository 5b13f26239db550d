package report

import (
	"time"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// FilterByDateRange retourne la sous-séquence des mouvements dont la date
// tombe dans [start, end], bornes incluses. L'ordre d'origine est conservé.
func FilterByDateRange(movements []entity.Movement, start, end time.Time) []entity.Movement {
	out := make([]entity.Movement, 0)
	for _, m := range movements {
		if m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterByProduct retourne les mouvements référençant le produit donné.
func FilterByProduct(movements []entity.Movement, productID string) []entity.Movement {
	out := make([]entity.Movement, 0)
	for _, m := range movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// FilterByCategory retourne les mouvements dont le produit appartient
// aujourd'hui à la catégorie donnée. Un produit reclassé après coup emporte
// ses mouvements dans sa catégorie courante.
func FilterByCategory(movements []entity.Movement, products []entity.Product, category entity.Category) []entity.Movement {
	ids := make(map[string]struct{})
	for _, p := range products {
		if p.Category == category {
			ids[p.ID] = struct{}{}
		}
	}
	out := make([]entity.Movement, 0)
	for _, m := range movements {
		if _, ok := ids[m.ProductID]; ok {
			out = append(out, m)
		}
	}
	return out
}
