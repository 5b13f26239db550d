package export

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	pdfPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDF rend le rapport en document A4 via Maroto : en-tête, totaux globaux,
// table des périodes, top produits et catégories.
type PDF struct{}

// NewPDF construit le moteur de rendu.
func NewPDF() *PDF { return &PDF{} }

// Libellés français des granularités pour l'en-tête du document.
var periodLabels = map[report.PeriodType]string{
	report.PeriodDaily:      "Journalier",
	report.PeriodWeekly:     "Hebdomadaire",
	report.PeriodMonthly:    "Mensuel",
	report.PeriodQuarterly:  "Trimestriel",
	report.PeriodSemiannual: "Semestriel",
	report.PeriodAnnual:     "Annuel",
}

// Render produit le PDF et retourne ses octets.
func (g *PDF) Render(summary report.Summary, periodType report.PeriodType) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(periodType))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Ventes par période"))
	m.AddRows(tableHeader("Période", "Ventes (XOF)", "Quantité", "Profit (XOF)", "Transactions"))
	for _, b := range summary.Buckets {
		m.AddRows(tableRow(
			b.Period,
			b.Sales.String(),
			strconv.FormatInt(b.Quantity, 10),
			b.Profit.String(),
			strconv.FormatInt(b.Transactions, 10),
		))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("Top produits"))
	m.AddRows(tableHeader("Produit", "Qté vendue", "CA (XOF)", "Profit (XOF)", ""))
	for _, p := range summary.TopProducts {
		m.AddRows(tableRow(p.ProductName, strconv.FormatInt(p.QuantitySold, 10), p.Revenue.String(), p.Profit.String(), ""))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("Par catégorie"))
	m.AddRows(tableHeader("Catégorie", "Ventes (XOF)", "Qté vendue", "Profit (XOF)", ""))
	for _, c := range summary.CategoryStats {
		m.AddRows(tableRow(string(c.Category), c.TotalSales.String(), strconv.FormatInt(c.QuantitySold, 10), c.Profit.String(), ""))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

func headerRow(periodType report.PeriodType) core.Row {
	label := periodLabels[periodType]
	date := time.Now().UTC().Format("02/01/2006")

	return row.New(14).Add(
		col.New(8).Add(
			text.New("Rapport de stock et de ventes", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: pdfPrimary, Top: 1,
			}),
			text.New("Granularité : "+label, props.Text{Size: 9, Top: 9, Color: pdfGray}),
		),
		col.New(4).Add(
			text.New("Généré le "+date, props.Text{Size: 9, Top: 3, Align: align.Right, Color: pdfGray}),
		),
	)
}

func totalsRow(summary report.Summary) core.Row {
	return row.New(12).Add(
		totalCol("Chiffre d'affaires", summary.TotalRevenue.String()+" XOF"),
		totalCol("Quantité vendue", strconv.FormatInt(summary.TotalQuantity, 10)),
		totalCol("Profit", summary.TotalProfit.String()+" XOF"),
		totalCol("Transactions", strconv.FormatInt(summary.TotalTransactions, 10)),
	)
}

func totalCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 8, Color: pdfGray, Top: 1}),
		text.New(value, props.Text{Size: 10, Style: fontstyle.Bold, Top: 6}),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: pdfPrimary, Top: 2}),
		),
	)
}

func tableHeader(c1, c2, c3, c4, c5 string) core.Row {
	cols := []core.Col{
		headerCell(c1, 4, align.Left),
		headerCell(c2, 2, align.Right),
		headerCell(c3, 2, align.Right),
		headerCell(c4, 2, align.Right),
		headerCell(c5, 2, align.Right),
	}
	return row.New(6).Add(cols...)
}

func headerCell(label string, width int, al align.Type) core.Col {
	return col.New(width).Add(
		text.New(label, props.Text{Size: 8, Style: fontstyle.Bold, Align: al, Color: pdfGray}),
	)
}

func tableRow(c1, c2, c3, c4, c5 string) core.Row {
	return row.New(5).Add(
		cell(c1, 4, align.Left),
		cell(c2, 2, align.Right),
		cell(c3, 2, align.Right),
		cell(c4, 2, align.Right),
		cell(c5, 2, align.Right),
	)
}

func cell(value string, width int, al align.Type) core.Col {
	return col.New(width).Add(text.New(value, props.Text{Size: 8, Align: al}))
}

// ContentType type MIME du document.
func (g *PDF) ContentType() string { return "application/pdf" }

// Extension extension de fichier.
func (g *PDF) Extension() string { return "pdf" }
