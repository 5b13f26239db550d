// Package http expose l'API du cœur au collaborateur d'interface : lectures
// et écritures du LedgerStore, requêtes du moteur de rapports, échange en
// bloc et exports.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
	domreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"
)

// decodeStrict décode le corps JSON en rejetant tout champ inconnu : une
// mise à jour partielle ne fusionne jamais silencieusement des champs hors
// du modèle.
func decodeStrict(c *fiber.Ctx, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respondError traduit les erreurs de domaine en réponses HTTP.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidImport):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMPORT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// persistenceWarning retourne le message d'avertissement si err est un échec
// de persistance (mutation mémoire réussie, durabilité perdue), sinon "".
func persistenceWarning(err error) string {
	if err != nil && errors.Is(err, domain.ErrPersistence) {
		return "sauvegarde échouée, données conservées en mémoire pour la session"
	}
	return ""
}

// parseReportQuery lit les paramètres communs des requêtes de rapport.
// Les dates acceptent AAAA-MM-JJ (fin étendue à la fin de journée) ou un
// horodatage RFC 3339 complet.
func parseReportQuery(c *fiber.Ctx) (dto.ReportRequest, error) {
	req := dto.ReportRequest{
		Period:    domreport.PeriodType(c.Query("periode")),
		ProductID: c.Query("produit"),
		Category:  entity.Category(c.Query("categorie")),
	}

	if raw := c.Query("debut"); raw != "" {
		t, err := parseDate(raw, false)
		if err != nil {
			return req, err
		}
		req.Start = &t
	}
	if raw := c.Query("fin"); raw != "" {
		t, err := parseDate(raw, true)
		if err != nil {
			return req, err
		}
		req.End = &t
	}
	return req, nil
}

func parseDate(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrValidation
	}
	if endOfDay {
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return t, nil
}
