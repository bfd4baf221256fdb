package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wareview/wareview/internal/app"
	"github.com/wareview/wareview/internal/controller"
	"github.com/wareview/wareview/internal/dashboard"
	"github.com/wareview/wareview/internal/inventory"
	"github.com/wareview/wareview/internal/shipments"
	"github.com/wareview/wareview/internal/suppliers"
	"github.com/wareview/wareview/internal/tips"
	"github.com/wareview/wareview/internal/view"
	"github.com/wareview/wareview/internal/warehouse"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	httpClient := &http.Client{Timeout: cfg.APITimeout}
	api := warehouse.NewClient(cfg.WarehouseAPIURL, httpClient)
	tipClient := tips.NewClient(cfg.TipsAPIURL, httpClient)

	if err := api.Ping(ctx); err != nil {
		logger.Warn("warehouse api ping", slog.String("url", cfg.WarehouseAPIURL), slog.Any("error", err))
	}

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	itemCtrl := controller.New[warehouse.InventoryItem, warehouse.InventoryItemCreate](warehouse.Items{Client: api}, inventory.Notices)
	supplierCtrl := controller.New[warehouse.Supplier, warehouse.SupplierCreate](warehouse.Suppliers{Client: api}, suppliers.Notices)
	shipmentCtrl := controller.New[warehouse.Shipment, warehouse.ShipmentCreate](warehouse.Shipments{Client: api}, shipments.Notices)

	dashboardHandler := dashboard.NewHandler(logger, api, tipClient, templates)
	inventoryHandler := inventory.NewHandler(logger, itemCtrl, warehouse.Suppliers{Client: api}, templates)
	suppliersHandler := suppliers.NewHandler(logger, supplierCtrl, templates)
	shipmentsHandler := shipments.NewHandler(logger, shipmentCtrl, warehouse.Items{Client: api}, templates)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		DashboardHandler: dashboardHandler,
		InventoryHandler: inventoryHandler,
		SuppliersHandler: suppliersHandler,
		ShipmentsHandler: shipmentsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
