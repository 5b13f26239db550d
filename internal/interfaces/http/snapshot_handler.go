package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/monitoring"
)

// SnapshotHandler échange en bloc : export du document complet et import en
// remplacement total.
type SnapshotHandler struct {
	store *ledger.Store
}

// NewSnapshotHandler construit le handler.
func NewSnapshotHandler(store *ledger.Store) *SnapshotHandler {
	return &SnapshotHandler{store: store}
}

// Export retourne le document {products, suppliers, movements} complet,
// ordre conservé.
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot())
}

// Import remplace l'agrégat entier. Seule la présence des trois collections
// est vérifiée ; aucun champ n'est validé individuellement, les
// enregistrements malformés seront ignorés en aval par le moteur.
func (h *SnapshotHandler) Import(c *fiber.Ctx) error {
	var snap entity.Snapshot
	if err := json.Unmarshal(c.Body(), &snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	err := h.store.Import(&snap)
	warning := persistenceWarning(err)
	if err != nil && warning == "" {
		return respondError(c, err)
	}
	if warning != "" {
		monitoring.PersistenceFailures.Inc()
		return c.JSON(fiber.Map{"avertissement": warning})
	}
	return c.JSON(fiber.Map{"statut": "importé"})
}
