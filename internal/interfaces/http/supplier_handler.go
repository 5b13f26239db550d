package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain"
)

// SupplierHandler gère les requêtes HTTP du catalogue de fournisseurs.
type SupplierHandler struct {
	store *ledger.Store
}

// NewSupplierHandler construit le handler.
func NewSupplierHandler(store *ledger.Store) *SupplierHandler {
	return &SupplierHandler{store: store}
}

// List retourne les fournisseurs.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Suppliers())
}

// GetByID retourne un fournisseur par id.
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, f := range h.store.Suppliers() {
		if f.ID == id {
			return c.JSON(f)
		}
	}
	return respondError(c, domain.ErrNotFound)
}

// Create ajoute un fournisseur.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := decodeStrict(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	f, err := h.store.CreateSupplier(in)
	warning := persistenceWarning(err)
	if err != nil && warning == "" {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SupplierResponse{Supplier: f, Warning: warning})
}

// Update applique une mise à jour partielle.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := decodeStrict(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide ou champ inconnu"})
	}
	f, err := h.store.UpdateSupplier(c.Params("id"), in)
	warning := persistenceWarning(err)
	if err != nil && warning == "" {
		return respondError(c, err)
	}
	return c.JSON(dto.SupplierResponse{Supplier: f, Warning: warning})
}

// Delete supprime un fournisseur.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	err := h.store.DeleteSupplier(c.Params("id"))
	if warning := persistenceWarning(err); warning != "" {
		return c.JSON(fiber.Map{"avertissement": warning})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
