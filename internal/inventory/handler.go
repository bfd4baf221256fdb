// Package inventory renders the inventory management page: the item table,
// the creation dialog and its notices.
package inventory

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wareview/wareview/internal/controller"
	"github.com/wareview/wareview/internal/forms"
	"github.com/wareview/wareview/internal/view"
	"github.com/wareview/wareview/internal/warehouse"
)

// Notices holds the page's user-facing messages.
var Notices = controller.Messages{
	FetchFailed:  "Failed to fetch inventory items. Please try again.",
	CreateFailed: "Failed to create item. Please try again.",
	Created:      "Item created successfully!",
}

// SupplierSource lists suppliers for the form's relation select.
type SupplierSource interface {
	List(ctx context.Context) ([]warehouse.Supplier, error)
}

// Handler wires HTTP endpoints for the inventory page.
type Handler struct {
	logger    *slog.Logger
	ctrl      *controller.Controller[warehouse.InventoryItem, warehouse.InventoryItemCreate]
	suppliers SupplierSource
	templates *view.Engine
}

// NewHandler constructs the inventory page handler.
func NewHandler(logger *slog.Logger, ctrl *controller.Controller[warehouse.InventoryItem, warehouse.InventoryItemCreate], suppliers SupplierSource, templates *view.Engine) *Handler {
	return &Handler{logger: logger, ctrl: ctrl, suppliers: suppliers, templates: templates}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/new", h.handleNew)
	r.Post("/", h.handleCreate)
	r.Post("/close", h.handleClose)
	r.Post("/notices/dismiss", h.handleDismiss)
}

type indexData struct {
	State    controller.State[warehouse.InventoryItem]
	BasePath string
}

type formData struct {
	Form      forms.ItemForm
	Errors    map[string]string
	Error     string
	Suppliers []warehouse.Supplier
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Refresh(r.Context()); err != nil {
		h.logger.Error("refresh inventory items", slog.Any("error", err))
	}
	snap := h.ctrl.Snapshot()
	h.render(w, http.StatusOK, "pages/inventory/index.html", view.TemplateData{
		Title:       "Inventory Management",
		CurrentPath: r.URL.Path,
		Data:        indexData{State: snap, BasePath: "/inventory"},
	})
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	h.ctrl.OpenDialog()
	h.renderForm(w, r, forms.ItemForm{}, map[string]string{}, "", http.StatusOK)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form, errs := forms.ParseItemForm(r.PostForm)
	if len(errs) > 0 {
		h.renderForm(w, r, form, errs, "", http.StatusBadRequest)
		return
	}
	if err := h.ctrl.SubmitCreate(r.Context(), form.Payload()); err != nil {
		h.logger.Error("create item failed", slog.Any("error", err))
		general := h.ctrl.Snapshot().Error
		if general == "" {
			general = Notices.CreateFailed
		}
		h.renderForm(w, r, form, map[string]string{}, general, http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	h.ctrl.CloseDialog()
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	h.ctrl.DismissNotice()
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, form forms.ItemForm, errs map[string]string, general string, status int) {
	suppliers, err := h.suppliers.List(r.Context())
	if err != nil {
		// The select falls back to "None" only, matching an empty relation list.
		h.logger.Error("fetch suppliers for item form", slog.Any("error", err))
		suppliers = nil
	}
	h.render(w, status, "pages/inventory/form.html", view.TemplateData{
		Title:       "Add New Item",
		CurrentPath: r.URL.Path,
		Data:        formData{Form: form, Errors: errs, Error: general, Suppliers: suppliers},
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
