// Package shipments renders the shipment tracking page.
package shipments

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wareview/wareview/internal/controller"
	"github.com/wareview/wareview/internal/forms"
	"github.com/wareview/wareview/internal/view"
	"github.com/wareview/wareview/internal/warehouse"
)

// Notices holds the page's user-facing messages.
var Notices = controller.Messages{
	FetchFailed:  "Failed to fetch shipments. Please try again.",
	CreateFailed: "Failed to create shipment. Please try again.",
	Created:      "Shipment created successfully!",
}

// ItemSource lists inventory items for the form's relation select.
type ItemSource interface {
	List(ctx context.Context) ([]warehouse.InventoryItem, error)
}

// Handler wires HTTP endpoints for the shipments page.
type Handler struct {
	logger    *slog.Logger
	ctrl      *controller.Controller[warehouse.Shipment, warehouse.ShipmentCreate]
	items     ItemSource
	templates *view.Engine
	now       func() time.Time
}

// NewHandler constructs the shipments page handler.
func NewHandler(logger *slog.Logger, ctrl *controller.Controller[warehouse.Shipment, warehouse.ShipmentCreate], items ItemSource, templates *view.Engine) *Handler {
	return &Handler{logger: logger, ctrl: ctrl, items: items, templates: templates, now: time.Now}
}

// MountRoutes registers shipment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/new", h.handleNew)
	r.Post("/", h.handleCreate)
	r.Post("/close", h.handleClose)
	r.Post("/notices/dismiss", h.handleDismiss)
}

type indexData struct {
	State    controller.State[warehouse.Shipment]
	BasePath string
}

type formData struct {
	Form     forms.ShipmentForm
	Errors   map[string]string
	Error    string
	Items    []warehouse.InventoryItem
	Statuses []string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Refresh(r.Context()); err != nil {
		h.logger.Error("refresh shipments", slog.Any("error", err))
	}
	snap := h.ctrl.Snapshot()
	h.render(w, http.StatusOK, "pages/shipments/index.html", view.TemplateData{
		Title:       "Shipment Tracking",
		CurrentPath: r.URL.Path,
		Data:        indexData{State: snap, BasePath: "/shipments"},
	})
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	h.ctrl.OpenDialog()
	form := forms.ShipmentForm{
		Status:                warehouse.StatusPending,
		EstimatedDeliveryDate: h.now().Format("2006-01-02"),
	}
	h.renderForm(w, r, form, map[string]string{}, "", http.StatusOK)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form, errs := forms.ParseShipmentForm(r.PostForm)
	if len(errs) > 0 {
		h.renderForm(w, r, form, errs, "", http.StatusBadRequest)
		return
	}
	if err := h.ctrl.SubmitCreate(r.Context(), form.Payload()); err != nil {
		h.logger.Error("create shipment failed", slog.Any("error", err))
		general := h.ctrl.Snapshot().Error
		if general == "" {
			general = Notices.CreateFailed
		}
		h.renderForm(w, r, form, map[string]string{}, general, http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/shipments", http.StatusSeeOther)
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	h.ctrl.CloseDialog()
	http.Redirect(w, r, "/shipments", http.StatusSeeOther)
}

func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	h.ctrl.DismissNotice()
	http.Redirect(w, r, "/shipments", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, form forms.ShipmentForm, errs map[string]string, general string, status int) {
	items, err := h.items.List(r.Context())
	if err != nil {
		h.logger.Error("fetch items for shipment form", slog.Any("error", err))
		items = nil
	}
	h.render(w, status, "pages/shipments/form.html", view.TemplateData{
		Title:       "Add New Shipment",
		CurrentPath: r.URL.Path,
		Data: formData{
			Form:     form,
			Errors:   errs,
			Error:    general,
			Items:    items,
			Statuses: []string{warehouse.StatusPending, warehouse.StatusInTransit, warehouse.StatusDelivered},
		},
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data view.TemplateData) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := h.templates.Render(w, name, data); err != nil {
		h.logger.Error("render template", slog.String("template", name), slog.Any("error", err))
	}
}
