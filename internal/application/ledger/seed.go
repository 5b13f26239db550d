package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/domain/entity"
)

// SeedSnapshot retourne le jeu de données de démonstration installé au
// premier lancement : cinq produits, deux fournisseurs et huit mouvements,
// pour que les rapports aient quelque chose à montrer.
func SeedSnapshot() *entity.Snapshot {
	created := time.Date(2025, time.October, 27, 10, 30, 0, 0, time.UTC)
	day := func(h, min int) time.Time {
		return time.Date(2025, time.October, 27, h, min, 0, 0, time.UTC)
	}
	xof := decimal.NewFromInt

	return &entity.Snapshot{
		Products: []entity.Product{
			{
				ID: "produit_001", Type: entity.TypeProduct,
				Name:        "Chargeur USB-C 65W",
				Description: "Compatible avec ordinateurs et téléphones",
				Category:    entity.CategoryElectronique,
				SalePrice:   xof(15000), AlertLevel: 5, Active: true, CreatedAt: created,
			},
			{
				ID: "produit_002", Type: entity.TypeProduct,
				Name:        "Savon Artisanal",
				Description: "Savon naturel fait à la main",
				Category:    entity.CategoryCosmetiques,
				SalePrice:   xof(2500), AlertLevel: 10, Active: true, CreatedAt: created,
			},
			{
				ID: "produit_003", Type: entity.TypeProduct,
				Name:        "Cahier A4 100 pages",
				Description: "Cahier scolaire de qualité",
				Category:    entity.CategoryPapeterie,
				SalePrice:   xof(3000), AlertLevel: 5, Active: true, CreatedAt: created,
			},
			{
				ID: "produit_004", Type: entity.TypeProduct,
				Name:        "Sandales Confort",
				Description: "Sandales confortables pour tous",
				Category:    entity.CategoryChaussures,
				SalePrice:   xof(12000), AlertLevel: 3, Active: true, CreatedAt: created,
			},
			{
				ID: "produit_005", Type: entity.TypeProduct,
				Name:        "Stylo Bleu",
				Description: "Stylo bille de qualité",
				Category:    entity.CategoryPapeterie,
				SalePrice:   xof(500), AlertLevel: 20, Active: true, CreatedAt: created,
			},
		},
		Suppliers: []entity.Supplier{
			{
				ID: "fournisseur_001", Type: entity.TypeSupplier,
				Name:    "Dakar Tech Import",
				Contact: "Mamadou Diop",
				Phone:   "+221 77 123 45 67",
				Email:   "contact@dakartech.sn",
				Address: "Marché Kermel, Stand 12, Dakar",
				Active:  true, CreatedAt: created,
			},
			{
				ID: "fournisseur_002", Type: entity.TypeSupplier,
				Name:    "Dakar Cosmétiques",
				Contact: "Fatou Sall",
				Phone:   "+221 78 987 65 43",
				Email:   "contact@dakarcos.sn",
				Address: "Rue 15, Plateau, Dakar",
				Active:  true, CreatedAt: created,
			},
		},
		Movements: []entity.Movement{
			{
				ID: "mouvement_20251027_001", Type: entity.TypeMovement,
				Kind: entity.MovementIn, Date: day(10, 0),
				ProductID: "produit_001", Quantity: 10, UnitPrice: xof(12000),
				SupplierID: "fournisseur_001", Note: "Livraison initiale",
			},
			{
				ID: "mouvement_20251027_002", Type: entity.TypeMovement,
				Kind: entity.MovementIn, Date: day(10, 5),
				ProductID: "produit_002", Quantity: 20, UnitPrice: xof(1500),
				SupplierID: "fournisseur_002", Note: "Livraison initiale",
			},
			{
				ID: "mouvement_20251027_003", Type: entity.TypeMovement,
				Kind: entity.MovementIn, Date: day(10, 10),
				ProductID: "produit_003", Quantity: 50, UnitPrice: xof(2000),
				SupplierID: "fournisseur_001", Note: "Livraison initiale",
			},
			{
				ID: "mouvement_20251027_004", Type: entity.TypeMovement,
				Kind: entity.MovementIn, Date: day(10, 15),
				ProductID: "produit_004", Quantity: 5, UnitPrice: xof(8000),
				SupplierID: "fournisseur_001", Note: "Livraison initiale",
			},
			{
				ID: "mouvement_20251027_005", Type: entity.TypeMovement,
				Kind: entity.MovementOut, Date: day(11, 0),
				ProductID: "produit_001", Quantity: 7, UnitPrice: xof(15000),
				Note: "Ventes comptoir",
			},
			{
				ID: "mouvement_20251027_006", Type: entity.TypeMovement,
				Kind: entity.MovementOut, Date: day(11, 30),
				ProductID: "produit_002", Quantity: 18, UnitPrice: xof(2500),
				Note: "Ventes comptoir",
			},
			{
				ID: "mouvement_20251027_007", Type: entity.TypeMovement,
				Kind: entity.MovementOut, Date: day(12, 0),
				ProductID: "produit_003", Quantity: 35, UnitPrice: xof(3000),
				Note: "Ventes comptoir",
			},
			{
				ID: "mouvement_20251027_008", Type: entity.TypeMovement,
				Kind: entity.MovementOut, Date: day(12, 30),
				ProductID: "produit_004", Quantity: 4, UnitPrice: xof(12000),
				Note: "Ventes comptoir",
			},
		},
	}
}
