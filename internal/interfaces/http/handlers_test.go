package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	appreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/report"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/export"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/storage"
	api "github.com/IbrahimaISIDev/Gestion-Stocks/internal/interfaces/http"
	"github.com/IbrahimaISIDev/Gestion-Stocks/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Montage de l'application de test
// ──────────────────────────────────────────────────────────────────────────────

// newApp monte l'API complète sur un backend mémoire amorcé avec le jeu de
// démonstration.
func newApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := ledger.New(storage.NewMemory(), logger.Nop())
	require.NoError(t, err)

	reports := appreport.New(store, map[string]appreport.Renderer{
		"csv":  export.NewCSV(),
		"xlsx": export.NewExcel(),
		"pdf":  export.NewPDF(),
	})

	app := fiber.New()
	api.Router(app, api.RouterDeps{Store: store, Reports: reports})
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *nethttp.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// ──────────────────────────────────────────────────────────────────────────────
// Produits
// ──────────────────────────────────────────────────────────────────────────────

func TestProduits_Creation(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/produits/", `{
		"nom": "Clé USB 32 Go",
		"categorie": "Électronique",
		"prix_vente_XOF": 5000,
		"seuil_alerte_stock": 4
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out struct {
		Produit struct {
			ID    string `json:"_id"`
			Nom   string `json:"nom"`
			Actif bool   `json:"actif"`
		} `json:"produit"`
		Avertissement string `json:"avertissement"`
	}
	decode(t, resp, &out)
	assert.NotEmpty(t, out.Produit.ID)
	assert.Equal(t, "Clé USB 32 Go", out.Produit.Nom)
	assert.True(t, out.Produit.Actif, "actif par défaut")
	assert.Empty(t, out.Avertissement)
}

// Tout champ JSON hors modèle est rejeté au décodage, jamais fusionné.
func TestProduits_ChampInconnuRejete(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "PUT", "/api/produits/produit_001", `{"prix_vente_XOF": 16000, "devise": "EUR"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Code string `json:"code"`
	}
	decode(t, resp, &out)
	assert.Equal(t, "INVALID_BODY", out.Code)
}

func TestProduits_ValidationMetier(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/produits/", `{"nom": "", "prix_vente_XOF": 1000}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Code string `json:"code"`
	}
	decode(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestProduits_Inconnu(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/produits/absent", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, "DELETE", "/api/produits/absent", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProduits_Suppression(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "DELETE", "/api/produits/produit_005", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, "GET", "/api/produits/produit_005", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

// Le jeu de démonstration laisse 3 chargeurs en stock (10 reçus, 7 vendus).
func TestStock_Courant(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/produits/produit_001/stock", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		IDProduit string `json:"id_produit"`
		Stock     int64  `json:"stock"`
	}
	decode(t, resp, &out)
	assert.Equal(t, "produit_001", out.IDProduit)
	assert.EqualValues(t, 3, out.Stock)
}

// Les alertes listent les produits actifs sous leur seuil, du plus critique
// au moins critique. Sur le jeu de démonstration : stylos (0), sandales (1),
// savons (2), chargeurs (3).
func TestStock_Alertes(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/stock/alertes", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []struct {
		ID    string `json:"_id"`
		Stock int64  `json:"stock"`
	}
	decode(t, resp, &out)
	require.Len(t, out, 4)
	assert.Equal(t, "produit_005", out[0].ID)
	assert.EqualValues(t, 0, out[0].Stock)
	assert.Equal(t, "produit_004", out[1].ID)
	assert.Equal(t, "produit_002", out[2].ID)
	assert.Equal(t, "produit_001", out[3].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Journal de mouvements
// ──────────────────────────────────────────────────────────────────────────────

func TestMouvements_Ajout(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/mouvements/", `{
		"type_mouvement": "SORTIE",
		"id_produit": "produit_001",
		"quantite": 2,
		"prix_unitaire_XOF": 15000
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out struct {
		Mouvement struct {
			ID   string `json:"_id"`
			Kind string `json:"type_mouvement"`
		} `json:"mouvement"`
	}
	decode(t, resp, &out)
	assert.NotEmpty(t, out.Mouvement.ID)
	assert.Equal(t, "SORTIE", out.Mouvement.Kind)

	// Le stock dérivé suit immédiatement.
	resp = do(t, app, "GET", "/api/produits/produit_001/stock", "")
	var st struct {
		Stock int64 `json:"stock"`
	}
	decode(t, resp, &st)
	assert.EqualValues(t, 1, st.Stock)
}

func TestMouvements_ValidationAvantMutation(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/mouvements/", `{
		"type_mouvement": "SORTIE",
		"id_produit": "produit_001",
		"quantite": 0,
		"prix_unitaire_XOF": 15000
	}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, "GET", "/api/mouvements/", "")
	var journal []json.RawMessage
	decode(t, resp, &journal)
	assert.Len(t, journal, 8, "le journal n'a pas bougé")
}

func TestMouvements_FiltreParProduit(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/mouvements/?produit=produit_001", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []struct {
		ProductID string `json:"id_produit"`
	}
	decode(t, resp, &out)
	require.Len(t, out, 2)
	for _, m := range out {
		assert.Equal(t, "produit_001", m.ProductID)
	}
}

// Le journal est append-only : aucune route de modification ni suppression
// n'est enregistrée, ces requêtes tombent dans le vide.
func TestMouvements_AppendOnly(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "PUT", "/api/mouvements/mouvement_20251027_001", `{"quantite": 99}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, "DELETE", "/api/mouvements/mouvement_20251027_001", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rapports
// ──────────────────────────────────────────────────────────────────────────────

func TestRapports_Quotidien(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/rapports?periode=daily", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		TotalRevenue      json.Number `json:"totalRevenue"`
		TotalTransactions int64       `json:"totalTransactions"`
		ChartData         []struct {
			Period string `json:"period"`
		} `json:"chartData"`
		TopProducts []struct {
			ProductID string `json:"productId"`
		} `json:"topProducts"`
	}
	decode(t, resp, &out)

	// Ventes de démonstration : 105000 + 45000 + 105000 + 48000.
	assert.Equal(t, "303000", out.TotalRevenue.String())
	assert.EqualValues(t, 4, out.TotalTransactions)
	require.Len(t, out.ChartData, 1, "tout le jeu tient sur une journée")
	assert.Equal(t, "2025-10-27", out.ChartData[0].Period)
	assert.NotEmpty(t, out.TopProducts)
}

func TestRapports_PeriodeInconnue(t *testing.T) {
	app := newApp(t)
	resp := do(t, app, "GET", "/api/rapports?periode=lunaire", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRapports_ExportCSV(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/rapports/export?format=csv&periode=daily", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "Période,Ventes (XOF)"))
}

func TestRapports_ExportFormatInconnu(t *testing.T) {
	app := newApp(t)
	resp := do(t, app, "GET", "/api/rapports/export?format=docx", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStats_Categories(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/stats/categories", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []struct {
		Category   string      `json:"category"`
		TotalSales json.Number `json:"totalSales"`
	}
	decode(t, resp, &out)
	require.Len(t, out, 4)
	// Électronique et Papeterie vendent 105000 chacune ; le tri stable garde
	// l'ordre de première apparition dans le journal.
	assert.Equal(t, "Électronique", out[0].Category)
	assert.Equal(t, "105000", out[0].TotalSales.String())
	assert.Equal(t, "Papeterie", out[1].Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Échange en bloc
// ──────────────────────────────────────────────────────────────────────────────

func TestExportImport_AllerRetour(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/export", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"products"`)
	assert.Contains(t, string(raw), `"suppliers"`)
	assert.Contains(t, string(raw), `"movements"`)

	// Le document exporté se réimporte tel quel.
	resp = do(t, app, "POST", "/api/import", string(raw))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, "GET", "/api/produits/", "")
	var products []json.RawMessage
	decode(t, resp, &products)
	assert.Len(t, products, 5)
}

// L'import exige la présence des trois collections, rien de plus.
func TestImport_CollectionManquante(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/import", `{"products": [], "suppliers": []}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Code string `json:"code"`
	}
	decode(t, resp, &out)
	assert.Equal(t, "INVALID_IMPORT", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Commandes WhatsApp
// ──────────────────────────────────────────────────────────────────────────────

func TestCommandesWhatsApp(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/commandes/whatsapp", `{
		"id_fournisseur": "fournisseur_001",
		"produits": [{"id_produit": "produit_001", "quantite": 10}],
		"note": "Urgent"
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		Lien    string `json:"lien"`
	}
	decode(t, resp, &out)
	assert.Contains(t, out.Message, "Chargeur USB-C 65W")
	assert.Contains(t, out.Message, "*Note:* Urgent")
	assert.True(t, strings.HasPrefix(out.Lien, "https://wa.me/221771234567?text="))
}

func TestCommandesWhatsApp_Validation(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "POST", "/api/commandes/whatsapp", `{"id_fournisseur": "fournisseur_001", "produits": []}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, "POST", "/api/commandes/whatsapp", `{"id_fournisseur": "absent", "produits": [{"id_produit": "produit_001", "quantite": 1}]}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// État de session
// ──────────────────────────────────────────────────────────────────────────────

func TestEtat(t *testing.T) {
	app := newApp(t)

	resp := do(t, app, "GET", "/api/etat", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		EnLigne      bool `json:"en_ligne"`
		Produits     int  `json:"produits"`
		Fournisseurs int  `json:"fournisseurs"`
		Mouvements   int  `json:"mouvements"`
	}
	decode(t, resp, &out)
	assert.True(t, out.EnLigne)
	assert.Equal(t, 5, out.Produits)
	assert.Equal(t, 2, out.Fournisseurs)
	assert.Equal(t, 8, out.Mouvements)

	// Le signal de connectivité se pose et se relit, sans bloquer quoi que
	// ce soit.
	resp = do(t, app, "PUT", "/api/etat/connectivite", `{"en_ligne": false}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, "GET", "/api/etat", "")
	decode(t, resp, &out)
	assert.False(t, out.EnLigne)
}
