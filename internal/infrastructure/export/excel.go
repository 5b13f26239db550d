package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"
)

// Excel rend le rapport en classeur xlsx : une feuille de seaux par période,
// une feuille top produits, une feuille catégories.
type Excel struct{}

// NewExcel construit le moteur de rendu.
func NewExcel() *Excel { return &Excel{} }

// Render produit le classeur.
func (e *Excel) Render(summary report.Summary, periodType report.PeriodType) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Périodes"); err != nil {
		return nil, fmt.Errorf("renommer la feuille: %w", err)
	}
	sheet = "Périodes"

	header := []interface{}{"Période", "Ventes (XOF)", "Quantité", "Profit (XOF)", "Transactions"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("en-tête périodes: %w", err)
	}
	row := 2
	for _, b := range summary.Buckets {
		sales, _ := b.Sales.Float64()
		profit, _ := b.Profit.Float64()
		cells := []interface{}{b.Period, sales, b.Quantity, profit, b.Transactions}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("ligne période %d: %w", row, err)
		}
		row++
	}
	// Ligne de totaux sous les seaux
	totalRevenue, _ := summary.TotalRevenue.Float64()
	totalProfit, _ := summary.TotalProfit.Float64()
	totals := []interface{}{"Total", totalRevenue, summary.TotalQuantity, totalProfit, summary.TotalTransactions}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
		return nil, fmt.Errorf("ligne de totaux: %w", err)
	}

	if err := e.productSheet(f, summary); err != nil {
		return nil, err
	}
	if err := e.categorySheet(f, summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("écrire le classeur: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Excel) productSheet(f *excelize.File, summary report.Summary) error {
	const sheet = "Top produits"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("feuille produits: %w", err)
	}
	header := []interface{}{"Produit", "Quantité vendue", "Chiffre d'affaires (XOF)", "Profit (XOF)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, p := range summary.TopProducts {
		revenue, _ := p.Revenue.Float64()
		profit, _ := p.Profit.Float64()
		cells := []interface{}{p.ProductName, p.QuantitySold, revenue, profit}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

func (e *Excel) categorySheet(f *excelize.File, summary report.Summary) error {
	const sheet = "Catégories"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("feuille catégories: %w", err)
	}
	header := []interface{}{"Catégorie", "Ventes (XOF)", "Quantité vendue", "Profit (XOF)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range summary.CategoryStats {
		sales, _ := c.TotalSales.Float64()
		profit, _ := c.Profit.Float64()
		cells := []interface{}{string(c.Category), sales, c.QuantitySold, profit}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

// ContentType type MIME du classeur.
func (e *Excel) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension extension de fichier.
func (e *Excel) Extension() string { return "xlsx" }
