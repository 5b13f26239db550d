package entity

import "time"

// TypeSupplier valeur du discriminant "type" pour les fournisseurs.
const TypeSupplier = "fournisseur"

// Supplier représente un fournisseur. Le téléphone sert à l'envoi de
// commandes WhatsApp ; le moteur de stock n'en dépend pas.
type Supplier struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type"` // toujours "fournisseur"
	Name      string    `json:"nom"`
	Contact   string    `json:"contact_principal,omitempty"`
	Phone     string    `json:"telephone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"adresse,omitempty"`
	Active    bool      `json:"actif"`
	CreatedAt time.Time `json:"date_creation"`
}
