package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/report"
)

// ReportHandler expose le moteur de rapports : résumé agrégé, statistiques
// par produit et par catégorie, exports téléchargeables.
type ReportHandler struct {
	uc *appreport.UseCase
}

// NewReportHandler construit le handler.
func NewReportHandler(uc *appreport.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate retourne le rapport agrégé. Granularité par défaut : mensuelle.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.uc.Generate(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// Export rend le rapport au format demandé (csv, xlsx ou pdf) et le sert en
// téléchargement.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	format := c.Query("format", "csv")
	out, err := h.uc.Export(format, req)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Content)
}

// ProductStats statistiques par produit sur le sous-ensemble filtré.
func (h *ReportHandler) ProductStats(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	stats, err := h.uc.ProductStats(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// CategoryStats statistiques par catégorie sur le sous-ensemble filtré.
func (h *ReportHandler) CategoryStats(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	stats, err := h.uc.CategoryStats(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
