package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-cocina/internal/application/alerts"
	"github.com/tu-usuario/stock-cocina/internal/application/command"
	"github.com/tu-usuario/stock-cocina/internal/application/dto"
	"github.com/tu-usuario/stock-cocina/internal/application/inventory"
	"github.com/tu-usuario/stock-cocina/internal/application/view"
	"github.com/tu-usuario/stock-cocina/internal/infrastructure/export"
	"github.com/tu-usuario/stock-cocina/internal/infrastructure/memory"
	"github.com/tu-usuario/stock-cocina/internal/interfaces/cli"
	"github.com/tu-usuario/stock-cocina/pkg/config"
	"github.com/tu-usuario/stock-cocina/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando sesión de inventario")

	repo := memory.NewItemRepository()
	storeUC := inventory.NewStoreUseCase(repo)

	// Sembrar el almacén: la semilla es configuración, la sesión no
	// persiste nada entre ejecuciones.
	seed, err := config.LoadSeed(cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar semilla")
	}
	for _, s := range seed {
		if _, err := storeUC.Add(dto.CreateItemRequest{
			Name:      s.Name,
			Stock:     decimal.NewFromFloat(s.Stock),
			Unit:      s.Unit,
			Threshold: decimal.NewFromFloat(s.Threshold),
			Cost:      decimal.NewFromFloat(s.Cost),
		}); err != nil {
			log.Fatal().Err(err).Str("item", s.Name).Msg("sembrar ítem")
		}
	}
	log.Info().Int("items", len(seed)).Msg("inventario sembrado")

	interpreter := command.NewInterpreter(storeUC)
	pipeline := view.NewPipeline(cfg.App.Locale)
	watcher := alerts.NewWatcher()

	session := cli.New(cli.Deps{
		Store:         storeUC,
		Interpreter:   interpreter,
		View:          pipeline,
		Watcher:       watcher,
		CSV:           export.NewCSVExporter(),
		HTML:          export.NewHTMLReport(cfg.App.Name, cfg.Export.Currency),
		PDF:           export.NewPDFReport(cfg.App.Name, cfg.Export.Currency),
		Log:           log,
		ExportDir:     cfg.Export.Dir,
		Currency:      cfg.Export.Currency,
		AlertsEnabled: cfg.Alerts.Enabled,
	}, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("sesión finalizada con error")
		os.Exit(1)
	}
	log.Info().Msg("sesión detenida")
}
