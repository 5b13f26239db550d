package dto

import (
	"time"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"
)

// ReportRequest paramètres de génération d'un rapport. Les filtres sont
// optionnels et se cumulent ; la plage de dates est inclusive aux deux
// bornes.
type ReportRequest struct {
	Period    report.PeriodType `query:"periode"`
	Start     *time.Time        `query:"debut"`
	End       *time.Time        `query:"fin"`
	ProductID string            `query:"produit"`
	Category  entity.Category   `query:"categorie"`
}
