package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	appreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/report"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	Store   *ledger.Store
	Reports *appreport.UseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Produits
	products := api.Group("/produits")
	productHandler := NewProductHandler(deps.Store)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/stock", productHandler.Stock)

	// Alertes de stock bas
	api.Get("/stock/alertes", productHandler.LowStock)

	// Fournisseurs
	suppliers := api.Group("/fournisseurs")
	supplierHandler := NewSupplierHandler(deps.Store)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Journal de mouvements (append-only : ni PUT ni DELETE)
	movements := api.Group("/mouvements")
	movementHandler := NewMovementHandler(deps.Store)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Append)

	// Rapports et statistiques
	reportHandler := NewReportHandler(deps.Reports)
	api.Get("/rapports", reportHandler.Generate)
	api.Get("/rapports/export", reportHandler.Export)
	api.Get("/stats/produits", reportHandler.ProductStats)
	api.Get("/stats/categories", reportHandler.CategoryStats)

	// Échange en bloc
	snapshotHandler := NewSnapshotHandler(deps.Store)
	api.Get("/export", snapshotHandler.Export)
	api.Post("/import", snapshotHandler.Import)

	// Commandes fournisseur WhatsApp
	orderHandler := NewOrderHandler(deps.Store)
	api.Post("/commandes/whatsapp", orderHandler.WhatsApp)

	// État de session
	statusHandler := NewStatusHandler(deps.Store)
	api.Get("/etat", statusHandler.Get)
	api.Put("/etat/connectivite", statusHandler.SetConnectivity)
}
