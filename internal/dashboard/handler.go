// Package dashboard renders the analytics landing page: stock and shipment
// charts, low stock alerts, tips from the static service, and the image
// recognition panel.
package dashboard

import (
	"context"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/wareview/wareview/internal/svg"
	"github.com/wareview/wareview/internal/tips"
	"github.com/wareview/wareview/internal/view"
	"github.com/wareview/wareview/internal/warehouse"
)

// Vision panel messages.
const (
	msgNoFile       = "Please select a file first."
	msgUploadFailed = "Upload failed. Please try again."
)

// AnalyticsSource is the slice of the warehouse API the dashboard reads.
type AnalyticsSource interface {
	StockByCategory(ctx context.Context) (map[string]int, error)
	DailyShipments(ctx context.Context) (map[string]int, error)
	LowStockAlerts(ctx context.Context) ([]warehouse.InventoryItem, error)
	ListItems(ctx context.Context) ([]warehouse.InventoryItem, error)
	PredictImage(ctx context.Context, filename string, file io.Reader) (warehouse.Prediction, error)
}

// TipSource lists notices from the static tips service.
type TipSource interface {
	List(ctx context.Context) ([]tips.Tip, error)
}

// Handler wires HTTP endpoints for the dashboard page.
type Handler struct {
	logger    *slog.Logger
	api       AnalyticsSource
	tips      TipSource
	templates *view.Engine

	mu         sync.Mutex
	prediction *warehouse.Prediction
	visionErr  string
}

// NewHandler constructs the dashboard handler.
func NewHandler(logger *slog.Logger, api AnalyticsSource, tipSource TipSource, templates *view.Engine) *Handler {
	return &Handler{logger: logger, api: api, tips: tipSource, templates: templates}
}

// MountRoutes registers dashboard routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/predict", h.handlePredict)
}

type pageData struct {
	StockChart    template.HTML
	ShipmentChart template.HTML
	LowStock      []warehouse.InventoryItem
	Tips          []tips.Tip
	StockValue    string
	Prediction    *warehouse.Prediction
	VisionError   string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := pageData{}

	var stock, daily map[string]int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stock, err = h.api.StockByCategory(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		daily, err = h.api.DailyShipments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		// Either fetch failing leaves both charts in their empty state.
		h.logger.Error("fetch analytics data", slog.Any("error", err))
		stock, daily = nil, nil
	}

	if series := CategorySeries(stock); len(series.Labels) > 0 {
		chart, err := svg.Bar(0, 0, series.Values, series.Labels, svg.BarOpts{
			Title:       "Stock Levels by Category",
			Description: "Aggregate stock quantity per category",
		})
		if err != nil {
			h.logger.Error("render stock chart", slog.Any("error", err))
		} else {
			data.StockChart = chart
		}
	}
	if series := DailySeries(daily); len(series.Labels) > 0 {
		chart, err := svg.Line(0, 0, series.Values, series.Labels, svg.LineOpts{
			Title:       "Daily Shipments Trend",
			Description: "Shipped quantity per day",
			ShowDots:    true,
		})
		if err != nil {
			h.logger.Error("render shipment chart", slog.Any("error", err))
		} else {
			data.ShipmentChart = chart
		}
	}

	lowStock, err := h.api.LowStockAlerts(ctx)
	if err != nil {
		h.logger.Error("fetch low stock alerts", slog.Any("error", err))
	} else {
		data.LowStock = lowStock
	}

	allTips, err := h.tips.List(ctx)
	if err != nil {
		h.logger.Error("fetch tips", slog.Any("error", err))
	} else {
		data.Tips = allTips
	}

	items, err := h.api.ListItems(ctx)
	if err != nil {
		h.logger.Error("fetch items for stock value", slog.Any("error", err))
	} else {
		data.StockValue = "$" + stockValue(items).StringFixed(2)
	}

	h.mu.Lock()
	data.Prediction = h.prediction
	data.VisionError = h.visionErr
	h.mu.Unlock()

	if err := h.templates.Render(w, "pages/dashboard.html", view.TemplateData{
		Title:       "Analytics Dashboard",
		CurrentPath: r.URL.Path,
		Data:        data,
	}); err != nil {
		h.logger.Error("render dashboard", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		// No upload staged: report locally without touching the network.
		h.setVision(nil, msgNoFile)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	prediction, err := h.api.PredictImage(r.Context(), header.Filename, file)
	if err != nil {
		h.logger.Error("predict image", slog.String("filename", header.Filename), slog.Any("error", err))
		h.setVision(nil, msgUploadFailed)
	} else {
		h.setVision(&prediction, "")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) setVision(prediction *warehouse.Prediction, errMsg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prediction = prediction
	h.visionErr = errMsg
}

// stockValue totals price times quantity across all items.
func stockValue(items []warehouse.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
