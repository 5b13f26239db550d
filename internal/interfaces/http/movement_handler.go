package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	domreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/report"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/monitoring"
)

// MovementHandler gère le journal de mouvements : consultation filtrée et
// ajout. Aucune route de modification ou de suppression n'existe, le
// journal est append-only.
type MovementHandler struct {
	store *ledger.Store
}

// NewMovementHandler construit le handler.
func NewMovementHandler(store *ledger.Store) *MovementHandler {
	return &MovementHandler{store: store}
}

// List retourne le journal, optionnellement filtré par plage de dates
// (bornes incluses), produit ou catégorie courante.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	movements := h.store.Movements()
	if req.Start != nil && req.End != nil {
		movements = domreport.FilterByDateRange(movements, *req.Start, *req.End)
	}
	if req.ProductID != "" {
		movements = domreport.FilterByProduct(movements, req.ProductID)
	}
	if req.Category != "" {
		movements = domreport.FilterByCategory(movements, h.store.Products(), req.Category)
	}
	return c.JSON(movements)
}

// Append ajoute une écriture au journal.
func (h *MovementHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendMovementRequest
	if err := decodeStrict(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	m, err := h.store.AppendMovement(in)
	warning := persistenceWarning(err)
	if err != nil && warning == "" {
		return respondError(c, err)
	}
	monitoring.MovementsAppended.Inc()
	if warning != "" {
		monitoring.PersistenceFailures.Inc()
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{Movement: m, Warning: warning})
}
