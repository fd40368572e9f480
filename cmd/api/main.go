package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shopspring/decimal"

	"github.com/fieldwise/agribooks/internal/accounting"
	accountingStore "github.com/fieldwise/agribooks/internal/accounting/store"
	"github.com/fieldwise/agribooks/internal/config"
	"github.com/fieldwise/agribooks/internal/database"
	"github.com/fieldwise/agribooks/internal/export"
	exportStore "github.com/fieldwise/agribooks/internal/export/store"
	agribooksHttp "github.com/fieldwise/agribooks/internal/http"
	accountingHandler "github.com/fieldwise/agribooks/internal/http/accounting"
	exportHandler "github.com/fieldwise/agribooks/internal/http/export"
)

func main() {
	// Monetary fields serialize as JSON numbers, matching the billing
	// UI's request/response contract.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	accountingService := accounting.NewService(accountingStore.New(db))
	accountingH := accountingHandler.NewHandler(accountingService)

	exportService := export.NewService(exportStore.New(db))
	exportH := exportHandler.NewHandler(exportService)

	router := agribooksHttp.New(cfg.Auth.JWTSecret, accountingH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
