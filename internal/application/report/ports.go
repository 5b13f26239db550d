package report

import domreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"

// Renderer transforme un rapport généré en document téléchargeable (CSV,
// classeur Excel, PDF). Chaque implémentation vit en infrastructure.
type Renderer interface {
	Render(summary domreport.Summary, periodType domreport.PeriodType) ([]byte, error)
	ContentType() string
	Extension() string
}
