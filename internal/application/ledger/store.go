// Package ledger implémente le LedgerStore : détenteur unique des catalogues
// de produits et fournisseurs et du journal append-only de mouvements.
// Le moteur de rapports ne voit que des instantanés en lecture seule pris
// ici ; toute mutation passe par ce store.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/dto"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
	"github.com/IbrahimaISIDev/Gestion-Stocks/pkg/logger"
)

// Store détient le snapshot courant et applique les mutations. La persistance
// est au mieux : si le backend échoue, l'état mémoire reste valide et fait
// foi pour le reste de la session, l'appelant est prévenu via ErrPersistence.
//
// Le verrou n'introduit aucun modèle multi-utilisateur : il protège
// uniquement le snapshot contre les accès concurrents du serveur HTTP.
// Entre deux processus, c'est dernier-écrit-gagnant au niveau du backend.
type Store struct {
	mu      sync.RWMutex
	snap    *entity.Snapshot
	backend Backend
	log     *logger.Logger
	online  bool

	now   func() time.Time
	newID func() string
}

// New charge le snapshot depuis le backend et construit le store. Au premier
// lancement (backend vide), le jeu de données de démonstration est installé
// pour que le moteur de rapports ait une entrée non vide.
func New(backend Backend, log *logger.Logger) (*Store, error) {
	s := &Store{
		backend: backend,
		log:     log,
		online:  true,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}

	snap, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("charger le snapshot: %w", err)
	}
	if snap.Empty() {
		snap = SeedSnapshot()
		if err := backend.Save(snap); err != nil {
			// Démarrage sans durabilité : on continue en mémoire.
			log.Warn().Err(err).Msg("sauvegarde du jeu de démonstration impossible")
		} else {
			log.Info().Msg("jeu de données de démonstration installé")
		}
	}
	s.snap = snap
	return s, nil
}

// SetOnline enregistre l'état de connectivité signalé par l'extérieur. C'est
// un signal d'affichage : aucune opération n'est bloquée ni mise en file.
func (s *Store) SetOnline(online bool) {
	s.mu.Lock()
	s.online = online
	s.mu.Unlock()
}

// Online retourne le dernier état de connectivité signalé.
func (s *Store) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// Snapshot retourne une copie de l'agrégat complet (export).
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Products retourne une copie du catalogue de produits.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.snap.Products))
	copy(out, s.snap.Products)
	return out
}

// Suppliers retourne une copie du catalogue de fournisseurs.
func (s *Store) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Supplier, len(s.snap.Suppliers))
	copy(out, s.snap.Suppliers)
	return out
}

// Movements retourne une copie du journal de mouvements.
func (s *Store) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Movement, len(s.snap.Movements))
	copy(out, s.snap.Movements)
	return out
}

// CreateProduct ajoute un produit au catalogue et persiste.
func (s *Store) CreateProduct(in dto.CreateProductRequest) (entity.Product, error) {
	if in.Name == "" {
		return entity.Product{}, fmt.Errorf("nom requis: %w", domain.ErrValidation)
	}
	if in.Category != "" && !in.Category.Valid() {
		return entity.Product{}, fmt.Errorf("catégorie inconnue %q: %w", in.Category, domain.ErrValidation)
	}
	if in.SalePrice.IsNegative() {
		return entity.Product{}, fmt.Errorf("prix de vente négatif: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := entity.Product{
		ID:          s.newID(),
		Type:        entity.TypeProduct,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		SalePrice:   in.SalePrice,
		AlertLevel:  in.AlertLevel,
		Active:      in.Active == nil || *in.Active,
		CreatedAt:   s.now(),
	}
	s.snap.Products = append(s.snap.Products, p)
	return p, s.persist()
}

// UpdateProduct applique une mise à jour partielle. ErrNotFound si l'id est
// absent.
func (s *Store) UpdateProduct(id string, in dto.UpdateProductRequest) (entity.Product, error) {
	if in.Category != nil && !in.Category.Valid() {
		return entity.Product{}, fmt.Errorf("catégorie inconnue %q: %w", *in.Category, domain.ErrValidation)
	}
	if in.SalePrice != nil && in.SalePrice.IsNegative() {
		return entity.Product{}, fmt.Errorf("prix de vente négatif: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Products {
		if s.snap.Products[i].ID != id {
			continue
		}
		p := &s.snap.Products[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.SalePrice != nil {
			p.SalePrice = *in.SalePrice
		}
		if in.AlertLevel != nil {
			p.AlertLevel = *in.AlertLevel
		}
		if in.Active != nil {
			p.Active = *in.Active
		}
		return *p, s.persist()
	}
	return entity.Product{}, domain.ErrNotFound
}

// DeleteProduct retire le produit du catalogue. Les mouvements qui le
// référencent ne sont pas supprimés : ils deviennent orphelins et le moteur
// les ignore dans chaque agrégat.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Products {
		if s.snap.Products[i].ID == id {
			s.snap.Products = append(s.snap.Products[:i], s.snap.Products[i+1:]...)
			return s.persist()
		}
	}
	return domain.ErrNotFound
}

// CreateSupplier ajoute un fournisseur et persiste.
func (s *Store) CreateSupplier(in dto.CreateSupplierRequest) (entity.Supplier, error) {
	if in.Name == "" {
		return entity.Supplier{}, fmt.Errorf("nom requis: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := entity.Supplier{
		ID:        s.newID(),
		Type:      entity.TypeSupplier,
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Active:    in.Active == nil || *in.Active,
		CreatedAt: s.now(),
	}
	s.snap.Suppliers = append(s.snap.Suppliers, f)
	return f, s.persist()
}

// UpdateSupplier applique une mise à jour partielle. ErrNotFound si absent.
func (s *Store) UpdateSupplier(id string, in dto.UpdateSupplierRequest) (entity.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Suppliers {
		if s.snap.Suppliers[i].ID != id {
			continue
		}
		f := &s.snap.Suppliers[i]
		if in.Name != nil {
			f.Name = *in.Name
		}
		if in.Contact != nil {
			f.Contact = *in.Contact
		}
		if in.Phone != nil {
			f.Phone = *in.Phone
		}
		if in.Email != nil {
			f.Email = *in.Email
		}
		if in.Address != nil {
			f.Address = *in.Address
		}
		if in.Active != nil {
			f.Active = *in.Active
		}
		return *f, s.persist()
	}
	return entity.Supplier{}, domain.ErrNotFound
}

// DeleteSupplier retire le fournisseur. ErrNotFound si absent.
func (s *Store) DeleteSupplier(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Suppliers {
		if s.snap.Suppliers[i].ID == id {
			s.snap.Suppliers = append(s.snap.Suppliers[:i], s.snap.Suppliers[i+1:]...)
			return s.persist()
		}
	}
	return domain.ErrNotFound
}

// AppendMovement ajoute une écriture au journal. Les préconditions sont
// vérifiées avant toute mutation (ErrValidation) ; aucune opération de
// modification ou de suppression n'existe pour les mouvements.
func (s *Store) AppendMovement(in dto.AppendMovementRequest) (entity.Movement, error) {
	if !in.Kind.Valid() {
		return entity.Movement{}, fmt.Errorf("type de mouvement %q: %w", in.Kind, domain.ErrValidation)
	}
	if in.ProductID == "" {
		return entity.Movement{}, fmt.Errorf("produit requis: %w", domain.ErrValidation)
	}
	if in.Quantity <= 0 {
		return entity.Movement{}, fmt.Errorf("quantité non positive: %w", domain.ErrValidation)
	}
	if in.UnitPrice.IsNegative() {
		return entity.Movement{}, fmt.Errorf("prix unitaire négatif: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.now()
	if in.Date != nil {
		date = *in.Date
	}
	m := entity.Movement{
		ID:         s.newID(),
		Type:       entity.TypeMovement,
		Kind:       in.Kind,
		Date:       date,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		SupplierID: in.SupplierID,
		Note:       in.Note,
		Synced:     in.Synced,
	}
	s.snap.Movements = append(s.snap.Movements, m)
	return m, s.persist()
}

// Import remplace l'agrégat entier par le document fourni. La validation se
// limite à la présence des trois collections ; des enregistrements malformés
// passent et seront ignorés en aval par le moteur.
func (s *Store) Import(snap *entity.Snapshot) error {
	if snap == nil || snap.Products == nil || snap.Suppliers == nil || snap.Movements == nil {
		return domain.ErrInvalidImport
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap.Clone()
	return s.persist()
}

// persist sauvegarde le snapshot courant. Un échec n'invalide pas l'état
// mémoire : il est signalé via ErrPersistence et la session continue.
// Appelé verrou tenu.
func (s *Store) persist() error {
	if err := s.backend.Save(s.snap); err != nil {
		s.log.Warn().Err(err).Msg("persistance du snapshot échouée, état mémoire conservé")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
