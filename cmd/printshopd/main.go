package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vailmont/printops/pkg/application/services/materials"
	"github.com/vailmont/printops/pkg/config"
	"github.com/vailmont/printops/pkg/infrastructure/repositories/sqlite"
	"github.com/vailmont/printops/pkg/interfaces/httpapi"
	"github.com/vailmont/printops/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "printshopd: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	srv := httpapi.NewServer(httpapi.Options{
		Orders:     store,
		Catalog:    store,
		Stock:      store,
		Usage:      store,
		Revisioner: store,
		Costing:    costingOptions(cfg.Costing),
		Window:     time.Duration(cfg.Forecast.WindowDays) * 24 * time.Hour,
		Logger:     log,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func costingOptions(cfg config.CostingConfig) materials.CostingOptions {
	return materials.CostingOptions{
		CostPerGram:            decimal.NewFromFloat(cfg.CostPerGram),
		LaborRatePerHour:       decimal.NewFromFloat(cfg.LaborRatePerHour),
		ElectricityRatePerHour: decimal.NewFromFloat(cfg.ElectricityRatePerHour),
		MarginRate:             decimal.NewFromFloat(cfg.MarginRate),
		FeeRate:                decimal.NewFromFloat(cfg.FeeRate),
		FlatFee:                decimal.NewFromFloat(cfg.FlatFee),
	}
}
