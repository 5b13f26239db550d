// Package report replie le journal de mouvements en agrégats de ventes et de
// profit par période, par produit et par catégorie. Toutes les fonctions sont
// pures : elles ne modifient jamais leurs entrées et tout l'état vit côté
// LedgerStore.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// Bucket agrégat d'une période : ventes, quantités et profit des mouvements
// partageant la même clé de période. Start est l'instant de début de la
// période ; c'est lui qui porte le tri chronologique, jamais l'étiquette.
type Bucket struct {
	Period       string          `json:"period"`
	Sales        decimal.Decimal `json:"sales"`
	Quantity     int64           `json:"quantity"`
	Profit       decimal.Decimal `json:"profit"`
	Transactions int64           `json:"movementsCount"`
	Start        time.Time       `json:"-"`
}

// ProductStats agrégat par produit. QuantitySold et Revenue proviennent des
// SORTIE uniquement ; Profit s'accumule depuis les ENTREE (marge potentielle
// au prix de vente courant). Ce découpage asymétrique est voulu et doit être
// conservé tel quel.
type ProductStats struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	QuantitySold int64           `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

// CategoryStats agrégat par catégorie, même découpage SORTIE/ENTREE que
// ProductStats. La catégorie retenue est celle du produit au moment du
// calcul, pas celle au moment du mouvement.
type CategoryStats struct {
	Category     entity.Category `json:"category"`
	TotalSales   decimal.Decimal `json:"totalSales"`
	QuantitySold int64           `json:"quantitySold"`
	Profit       decimal.Decimal `json:"profit"`
}

// Summary rapport complet : totaux globaux, top produits, statistiques par
// catégorie et seaux chronologiques.
type Summary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalQuantity     int64           `json:"totalQuantity"`
	TotalProfit       decimal.Decimal `json:"totalProfit"`
	TotalTransactions int64           `json:"totalTransactions"`
	TopProducts       []ProductStats  `json:"topProducts"`
	CategoryStats     []CategoryStats `json:"categoryStats"`
	Buckets           []Bucket        `json:"chartData"`
}

const topProductsLimit = 5

// Generate construit le rapport agrégé des mouvements à la granularité
// demandée.
//
// Les SORTIE créent et alimentent les seaux (ventes, quantités, nombre de
// transactions). Les ENTREE ajoutent ensuite au profit du seau la marge
// potentielle quantité × (prix de vente courant − prix unitaire d'achat) —
// une approximation délibérée, pas un coût des ventes réalisé. Un seau doit
// déjà exister pour recevoir du profit : une période n'ayant que des ENTREE
// perd silencieusement son profit. Ce trou est un comportement historique
// documenté, à ne pas corriger sans décision explicite.
//
// Tout mouvement référençant un produit supprimé est ignoré sans erreur.
func Generate(movements []entity.Movement, products []entity.Product, periodType PeriodType) Summary {
	byID := productIndex(products)

	buckets := make(map[string]*Bucket)
	var order []string

	// Passe 1 : les ventes créent les seaux.
	for _, m := range movements {
		if m.Kind != entity.MovementOut {
			continue
		}
		key := periodKey(m.Date, periodType)
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{Period: key, Start: periodStart(m.Date, periodType)}
			buckets[key] = b
			order = append(order, key)
		}
		b.Sales = b.Sales.Add(amount(m.Quantity, m.UnitPrice))
		b.Quantity += m.Quantity
		b.Transactions++
	}

	// Passe 2 : les achats versent leur marge potentielle dans un seau déjà
	// existant uniquement.
	for _, m := range movements {
		if m.Kind != entity.MovementIn {
			continue
		}
		p, ok := byID[m.ProductID]
		if !ok {
			continue
		}
		if b, ok := buckets[periodKey(m.Date, periodType)]; ok {
			b.Profit = b.Profit.Add(margin(m, p))
		}
	}

	out := Summary{
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
		Buckets:      make([]Bucket, 0, len(order)),
	}
	for _, key := range order {
		b := buckets[key]
		out.Buckets = append(out.Buckets, *b)
		out.TotalRevenue = out.TotalRevenue.Add(b.Sales)
		out.TotalQuantity += b.Quantity
		out.TotalProfit = out.TotalProfit.Add(b.Profit)
		out.TotalTransactions += b.Transactions
	}
	sort.SliceStable(out.Buckets, func(i, j int) bool {
		return out.Buckets[i].Start.Before(out.Buckets[j].Start)
	})

	stats := ProductStatsOf(movements, products)
	if len(stats) > topProductsLimit {
		stats = stats[:topProductsLimit]
	}
	out.TopProducts = stats
	out.CategoryStats = CategoryStatsOf(movements, products)
	return out
}

// ProductStatsOf agrège les mouvements par produit : ventes (SORTIE) d'un
// côté, marge potentielle (ENTREE) de l'autre. Résultat trié par chiffre
// d'affaires décroissant, stable sur l'ordre de première apparition.
func ProductStatsOf(movements []entity.Movement, products []entity.Product) []ProductStats {
	byID := productIndex(products)

	stats := make(map[string]*ProductStats)
	var order []string
	for _, m := range movements {
		p, ok := byID[m.ProductID]
		if !ok {
			continue
		}
		st, ok := stats[m.ProductID]
		if !ok {
			st = &ProductStats{
				ProductID:   m.ProductID,
				ProductName: p.Name,
				Revenue:     decimal.Zero,
				Profit:      decimal.Zero,
			}
			stats[m.ProductID] = st
			order = append(order, m.ProductID)
		}
		if m.Kind == entity.MovementOut {
			st.QuantitySold += m.Quantity
			st.Revenue = st.Revenue.Add(amount(m.Quantity, m.UnitPrice))
		} else {
			st.Profit = st.Profit.Add(margin(m, p))
		}
	}

	out := make([]ProductStats, 0, len(order))
	for _, id := range order {
		out = append(out, *stats[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out
}

// CategoryStatsOf agrège les mouvements par catégorie courante du produit.
// Résultat trié par ventes décroissantes, stable sur l'ordre de première
// apparition.
func CategoryStatsOf(movements []entity.Movement, products []entity.Product) []CategoryStats {
	byID := productIndex(products)

	stats := make(map[entity.Category]*CategoryStats)
	var order []entity.Category
	for _, m := range movements {
		p, ok := byID[m.ProductID]
		if !ok {
			continue
		}
		st, ok := stats[p.Category]
		if !ok {
			st = &CategoryStats{
				Category:   p.Category,
				TotalSales: decimal.Zero,
				Profit:     decimal.Zero,
			}
			stats[p.Category] = st
			order = append(order, p.Category)
		}
		if m.Kind == entity.MovementOut {
			st.QuantitySold += m.Quantity
			st.TotalSales = st.TotalSales.Add(amount(m.Quantity, m.UnitPrice))
		} else {
			st.Profit = st.Profit.Add(margin(m, p))
		}
	}

	out := make([]CategoryStats, 0, len(order))
	for _, c := range order {
		out = append(out, *stats[c])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSales.GreaterThan(out[j].TotalSales) })
	return out
}

func productIndex(products []entity.Product) map[string]entity.Product {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

func amount(qty int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(qty))
}

// margin marge potentielle d'un achat : quantité × (prix de vente courant −
// coût unitaire d'achat).
func margin(m entity.Movement, p entity.Product) decimal.Decimal {
	return p.SalePrice.Sub(m.UnitPrice).Mul(decimal.NewFromInt(m.Quantity))
}
