// Package whatsapp construit les messages de commande fournisseur et les
// liens wa.me correspondants. Fonctions pures : l'ouverture du lien est
// l'affaire du collaborateur d'interface, jamais du cœur.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// OrderItem ligne d'une commande fournisseur.
type OrderItem struct {
	ProductID string `json:"id_produit"`
	Quantity  int64  `json:"quantite"`
}

// OrderMessage formate le message de commande pour un fournisseur. Les
// produits introuvables sont omis de la liste, comme partout ailleurs.
func OrderMessage(supplier entity.Supplier, items []OrderItem, products []entity.Product, note string, at time.Time) string {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var lines []string
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s - Quantité: %d", p.Name, it.Quantity))
	}

	contact := supplier.Contact
	if contact == "" {
		contact = "N/A"
	}

	var b strings.Builder
	b.WriteString("*COMMANDE DE STOCK*\n\n")
	fmt.Fprintf(&b, "📋 *Fournisseur:* %s\n", supplier.Name)
	fmt.Fprintf(&b, "📱 *Contact:* %s\n", contact)
	fmt.Fprintf(&b, "🕐 *Date:* %s\n\n", at.Format("02/01/2006 15:04"))
	b.WriteString("*Produits à approvisionner:*\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	if note != "" {
		fmt.Fprintf(&b, "\n*Note:* %s\n", note)
	}
	b.WriteString("\n*Répondez à cette commande dès réception.*")
	return b.String()
}

// Link construit le lien wa.me d'envoi du message. Le numéro est nettoyé de
// tout caractère non numérique et du + de tête.
func Link(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}
