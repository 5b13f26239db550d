package entity

// Snapshot est l'agrégat complet persisté et échangé en bloc : catalogues de
// produits et fournisseurs, plus le journal de mouvements. C'est aussi le
// document d'export/import (les trois clés de premier niveau font foi).
type Snapshot struct {
	Products  []Product  `json:"products"`
	Suppliers []Supplier `json:"suppliers"`
	Movements []Movement `json:"movements"`
}

// Clone retourne une copie indépendante des trois collections. Les éléments
// sont des valeurs sans pointeurs partagés, une copie des slices suffit.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Products:  make([]Product, len(s.Products)),
		Suppliers: make([]Supplier, len(s.Suppliers)),
		Movements: make([]Movement, len(s.Movements)),
	}
	copy(out.Products, s.Products)
	copy(out.Suppliers, s.Suppliers)
	copy(out.Movements, s.Movements)
	return out
}

// Empty indique si le snapshot ne contient aucune donnée.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Products) == 0 && len(s.Suppliers) == 0 && len(s.Movements) == 0)
}
