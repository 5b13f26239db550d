// Package report orchestre le moteur de rapports pur au-dessus du
// LedgerStore : application des filtres demandés, génération du résumé,
// rendu des exports.
package report

import (
	"fmt"
	"time"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
	domreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/stock"
)

// UseCase requêtes de lecture dérivées : stock courant, alertes, rapports,
// statistiques et exports. Tout est calculé sur un instantané pris au moment
// de l'appel ; rien n'est muté.
type UseCase struct {
	store     *ledger.Store
	renderers map[string]Renderer
}

// New construit le cas d'usage. renderers associe un nom de format ("csv",
// "xlsx", "pdf") à son moteur de rendu.
func New(store *ledger.Store, renderers map[string]Renderer) *UseCase {
	return &UseCase{store: store, renderers: renderers}
}

// CurrentStock retourne le stock courant dérivé du journal pour un produit.
func (uc *UseCase) CurrentStock(productID string) int64 {
	return stock.Current(productID, uc.store.Movements())
}

// LowStock retourne les produits actifs sous leur seuil d'alerte, du plus
// critique au moins critique.
func (uc *UseCase) LowStock() []stock.ProductStock {
	return stock.Low(uc.store.Products(), uc.store.Movements())
}

// Generate produit le rapport agrégé selon les paramètres demandés.
func (uc *UseCase) Generate(req dto.ReportRequest) (domreport.Summary, error) {
	period := req.Period
	if period == "" {
		period = domreport.PeriodMonthly
	}
	if !period.Valid() {
		return domreport.Summary{}, fmt.Errorf("période %q: %w", req.Period, domain.ErrValidation)
	}

	products := uc.store.Products()
	movements, err := uc.filtered(req, products)
	if err != nil {
		return domreport.Summary{}, err
	}
	return domreport.Generate(movements, products, period), nil
}

// ProductStats statistiques par produit sur le sous-ensemble filtré.
func (uc *UseCase) ProductStats(req dto.ReportRequest) ([]domreport.ProductStats, error) {
	products := uc.store.Products()
	movements, err := uc.filtered(req, products)
	if err != nil {
		return nil, err
	}
	return domreport.ProductStatsOf(movements, products), nil
}

// CategoryStats statistiques par catégorie sur le sous-ensemble filtré.
func (uc *UseCase) CategoryStats(req dto.ReportRequest) ([]domreport.CategoryStats, error) {
	products := uc.store.Products()
	movements, err := uc.filtered(req, products)
	if err != nil {
		return nil, err
	}
	return domreport.CategoryStatsOf(movements, products), nil
}

// Export document rendu par le rapport généré.
type Export struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Export génère le rapport puis le rend au format demandé.
func (uc *UseCase) Export(format string, req dto.ReportRequest) (*Export, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("format d'export %q: %w", format, domain.ErrValidation)
	}
	period := req.Period
	if period == "" {
		period = domreport.PeriodMonthly
	}

	summary, err := uc.Generate(req)
	if err != nil {
		return nil, err
	}
	content, err := r.Render(summary, period)
	if err != nil {
		return nil, fmt.Errorf("rendu %s: %w", format, err)
	}
	name := fmt.Sprintf("rapport-%s-%s.%s", period, time.Now().UTC().Format("2006-01-02"), r.Extension())
	return &Export{Content: content, ContentType: r.ContentType(), Filename: name}, nil
}

// filtered applique les filtres de la requête au journal courant.
func (uc *UseCase) filtered(req dto.ReportRequest, products []entity.Product) ([]entity.Movement, error) {
	movements := uc.store.Movements()
	if req.Start != nil || req.End != nil {
		start := time.Time{}
		if req.Start != nil {
			start = *req.Start
		}
		end := time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
		if req.End != nil {
			end = *req.End
		}
		if end.Before(start) {
			return nil, fmt.Errorf("plage de dates inversée: %w", domain.ErrValidation)
		}
		movements = domreport.FilterByDateRange(movements, start, end)
	}
	if req.ProductID != "" {
		movements = domreport.FilterByProduct(movements, req.ProductID)
	}
	if req.Category != "" {
		if !req.Category.Valid() {
			return nil, fmt.Errorf("catégorie %q: %w", req.Category, domain.ErrValidation)
		}
		movements = domreport.FilterByCategory(movements, products, req.Category)
	}
	return movements, nil
}
