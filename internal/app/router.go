package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wareview/wareview/internal/dashboard"
	"github.com/wareview/wareview/internal/inventory"
	"github.com/wareview/wareview/internal/shipments"
	"github.com/wareview/wareview/internal/suppliers"
	"github.com/wareview/wareview/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	DashboardHandler *dashboard.Handler
	InventoryHandler *inventory.Handler
	SuppliersHandler *suppliers.Handler
	ShipmentsHandler *shipments.Handler
}

// NewRouter constructs the chi.Router with Wareview defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(params.Logger, params.Config) {
		r.Use(mw)
	}
	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.DashboardHandler.MountRoutes(r)
	r.Route("/inventory", params.InventoryHandler.MountRoutes)
	r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
	r.Route("/shipments", params.ShipmentsHandler.MountRoutes)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
