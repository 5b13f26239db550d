// Package stock dérive les niveaux de stock courants depuis le journal de
// mouvements. Aucun état : le stock est toujours le repli des ENTREE moins
// les SORTIE du produit, jamais une valeur stockée qui pourrait diverger.
package stock

import (
	"sort"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// Current calcule le stock courant d'un produit : somme des quantités ENTREE
// moins somme des quantités SORTIE. Le repli est commutatif, l'ordre des
// mouvements est sans effet. Le résultat peut être négatif (survente) ; il
// n'est pas écrêté car un stock négatif signale une erreur de saisie à
// afficher, pas à masquer.
func Current(productID string, movements []entity.Movement) int64 {
	var total int64
	for _, m := range movements {
		if m.ProductID != productID {
			continue
		}
		switch m.Kind {
		case entity.MovementIn:
			total += m.Quantity
		case entity.MovementOut:
			total -= m.Quantity
		}
	}
	return total
}

// ProductStock produit annoté de son stock calculé.
type ProductStock struct {
	entity.Product
	Stock int64 `json:"stock"`
}

// Low retourne les produits actifs dont le stock courant est sous leur seuil
// d'alerte, annotés du stock calculé et triés par stock croissant (le plus
// critique en premier). Le tri est stable : à stock égal, l'ordre du
// catalogue est conservé.
func Low(products []entity.Product, movements []entity.Movement) []ProductStock {
	low := make([]ProductStock, 0)
	for _, p := range products {
		if !p.Active {
			continue
		}
		s := Current(p.ID, movements)
		if s < p.AlertLevel {
			low = append(low, ProductStock{Product: p, Stock: s})
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	return low
}
