package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/monitoring"
)

// StatusHandler état de session : connectivité signalée et tailles des
// collections. La connectivité est un pur signal d'affichage, elle ne bloque
// ni ne met en file aucune opération.
type StatusHandler struct {
	store *ledger.Store
}

// NewStatusHandler construit le handler.
func NewStatusHandler(store *ledger.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

// Get retourne l'état courant.
func (h *StatusHandler) Get(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	return c.JSON(fiber.Map{
		"en_ligne":     h.store.Online(),
		"produits":     len(snap.Products),
		"fournisseurs": len(snap.Suppliers),
		"mouvements":   len(snap.Movements),
	})
}

// SetConnectivity enregistre l'état de connectivité signalé par l'interface.
func (h *StatusHandler) SetConnectivity(c *fiber.Ctx) error {
	var in struct {
		Online bool `json:"en_ligne"`
	}
	if err := decodeStrict(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	h.store.SetOnline(in.Online)
	if in.Online {
		monitoring.Online.Set(1)
	} else {
		monitoring.Online.Set(0)
	}
	return c.JSON(fiber.Map{"en_ligne": in.Online})
}
