package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/stock"
)

// ProductHandler gère les requêtes HTTP du catalogue de produits.
type ProductHandler struct {
	store *ledger.Store
}

// NewProductHandler construit le handler.
func NewProductHandler(store *ledger.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List retourne le catalogue courant.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Products())
}

// GetByID retourne un produit par id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, p := range h.store.Products() {
		if p.ID == id {
			return c.JSON(p)
		}
	}
	return respondError(c, domain.ErrNotFound)
}

// Create ajoute un produit.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := decodeStrict(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	p, err := h.store.CreateProduct(in)
	warning := persistenceWarning(err)
	if err != nil && warning == "" {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductResponse{Product: p, Warning: warning})
}

// Update applique une mise à jour partielle.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := decodeStrict(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide ou champ inconnu"})
	}
	p, err := h.store.UpdateProduct(c.Params("id"), in)
	warning := persistenceWarning(err)
	if err != nil && warning == "" {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductResponse{Product: p, Warning: warning})
}

// Delete supprime un produit. Ses mouvements restent dans le journal et
// seront ignorés par les agrégats.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	err := h.store.DeleteProduct(c.Params("id"))
	if warning := persistenceWarning(err); warning != "" {
		return c.JSON(fiber.Map{"avertissement": warning})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stock retourne le stock courant dérivé du journal pour un produit.
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, p := range h.store.Products() {
		if p.ID == id {
			return c.JSON(fiber.Map{
				"id_produit": id,
				"stock":      stock.Current(id, h.store.Movements()),
			})
		}
	}
	return respondError(c, domain.ErrNotFound)
}

// LowStock retourne les produits actifs sous leur seuil d'alerte, du plus
// critique au moins critique.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(stock.Low(h.store.Products(), h.store.Movements()))
}
