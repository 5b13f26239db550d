package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain"
	"github.com/IbrahimaISIDev/Gestion-Stocks/pkg/whatsapp"
)

// OrderRequest commande fournisseur à formater pour WhatsApp.
type OrderRequest struct {
	SupplierID string               `json:"id_fournisseur"`
	Items      []whatsapp.OrderItem `json:"produits"`
	Note       string               `json:"note"`
}

// OrderHandler formate les commandes fournisseur en message WhatsApp et lien
// wa.me. Le cœur ne contacte jamais WhatsApp : ouvrir le lien est l'affaire
// de l'interface.
type OrderHandler struct {
	store *ledger.Store
}

// NewOrderHandler construit le handler.
func NewOrderHandler(store *ledger.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// WhatsApp construit le message de commande et son lien d'envoi.
func (h *OrderHandler) WhatsApp(c *fiber.Ctx) error {
	var in OrderRequest
	if err := decodeStrict(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if len(in.Items) == 0 {
		return respondError(c, fmt.Errorf("aucun produit sélectionné: %w", domain.ErrValidation))
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return respondError(c, fmt.Errorf("quantité non positive: %w", domain.ErrValidation))
		}
	}

	for _, f := range h.store.Suppliers() {
		if f.ID != in.SupplierID {
			continue
		}
		msg := whatsapp.OrderMessage(f, in.Items, h.store.Products(), in.Note, time.Now())
		return c.JSON(fiber.Map{
			"message": msg,
			"lien":    whatsapp.Link(f.Phone, msg),
		})
	}
	return respondError(c, domain.ErrNotFound)
}
