package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/ledger"
	appreport "github.com/IbrahimaISIDev/Gestion-Stocks/internal/application/report"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/export"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/monitoring"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/postgres"
	"github.com/IbrahimaISIDev/Gestion-Stocks/internal/infrastructure/storage"
	httpRouter "github.com/IbrahimaISIDev/Gestion-Stocks/internal/interfaces/http"
	"github.com/IbrahimaISIDev/Gestion-Stocks/pkg/config"
	"github.com/IbrahimaISIDev/Gestion-Stocks/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Backend).
		Msg("démarrage de l'application")

	backend, closeBackend, err := newBackend(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("ouvrir le backend de persistance")
	}
	if closeBackend != nil {
		defer closeBackend()
	}

	store, err := ledger.New(backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialiser le ledger store")
	}

	reportUC := appreport.New(store, map[string]appreport.Renderer{
		"csv":  export.NewCSV(),
		"xlsx": export.NewExcel(),
		"pdf":  export.NewPDF(),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:   store,
		Reports: reportUC,
	})

	// Serveur annexe santé + métriques Prometheus
	var metricsSrv *monitoring.Server
	if cfg.Metrics.Enabled {
		metricsSrv = monitoring.NewServer(cfg.Metrics.Addr)
		go func() {
			log.Info().Str("addr", cfg.Metrics.Addr).Msg("serveur de métriques démarré")
			if err := metricsSrv.Start(); err != nil {
				log.Error().Err(err).Msg("serveur de métriques arrêté")
			}
		}()
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("arrêt du serveur de métriques")
		}
	}

	log.Info().Msg("application arrêtée")
}

// newBackend sélectionne le backend de persistance d'après la configuration.
func newBackend(cfg *config.Config) (ledger.Backend, func(), error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemory(), nil, nil
	case "file":
		b, err := storage.NewFile(cfg.Storage.Path)
		return b, nil, err
	case "sqlite":
		b, err := storage.NewSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { _ = b.Close() }, nil
	case "postgres":
		b, err := postgres.New(context.Background(), cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	default:
		return nil, nil, fmt.Errorf("backend de stockage inconnu %q", cfg.Storage.Backend)
	}
}
