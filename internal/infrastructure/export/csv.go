// Package export rend un rapport généré en document téléchargeable :
// CSV (format historique), classeur Excel et PDF.
package export

import (
	"strconv"
	"strings"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"
)

// Colonnes du CSV historique. Les étiquettes de période et les nombres ne
// contiennent jamais de virgule, aucun échappement n'est nécessaire.
var csvHeaders = []string{"Période", "Ventes (XOF)", "Quantité", "Profit (XOF)", "Transactions"}

// CSV rend les seaux du rapport dans le format historique : une ligne
// d'en-tête puis une ligne par période, champs joints par des virgules.
type CSV struct{}

// NewCSV construit le moteur de rendu.
func NewCSV() *CSV { return &CSV{} }

// Render produit le document CSV.
func (c *CSV) Render(summary report.Summary, _ report.PeriodType) ([]byte, error) {
	lines := make([]string, 0, len(summary.Buckets)+1)
	lines = append(lines, strings.Join(csvHeaders, ","))
	for _, b := range summary.Buckets {
		lines = append(lines, strings.Join([]string{
			b.Period,
			b.Sales.String(),
			strconv.FormatInt(b.Quantity, 10),
			b.Profit.String(),
			strconv.FormatInt(b.Transactions, 10),
		}, ","))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// ContentType type MIME du document.
func (c *CSV) ContentType() string { return "text/csv" }

// Extension extension de fichier.
func (c *CSV) Extension() string { return "csv" }
