package dto

import "github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"

// CreateSupplierRequest création d'un fournisseur. Actif vaut true si omis.
type CreateSupplierRequest struct {
	Name    string `json:"nom"`
	Contact string `json:"contact_principal"`
	Phone   string `json:"telephone"`
	Email   string `json:"email"`
	Address string `json:"adresse"`
	Active  *bool  `json:"actif"`
}

// UpdateSupplierRequest mise à jour partielle typée d'un fournisseur.
type UpdateSupplierRequest struct {
	Name    *string `json:"nom"`
	Contact *string `json:"contact_principal"`
	Phone   *string `json:"telephone"`
	Email   *string `json:"email"`
	Address *string `json:"adresse"`
	Active  *bool   `json:"actif"`
}

// SupplierResponse fournisseur retourné par l'API.
type SupplierResponse struct {
	Supplier entity.Supplier `json:"fournisseur"`
	Warning  string          `json:"avertissement,omitempty"`
}
