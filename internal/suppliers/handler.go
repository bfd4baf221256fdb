// Package suppliers renders the supplier management page.
package suppliers

import (
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
	FetchFailed:  "Failed to fetch suppliers. Please try again.",
	CreateFailed: "Failed to create supplier. Please try again.",
	Created:      "Supplier created successfully!",
}

// Handler wires HTTP endpoints for the suppliers page.
type Handler struct {
	logger    *slog.Logger
	ctrl      *controller.Controller[warehouse.Supplier, warehouse.SupplierCreate]
	templates *view.Engine
}

// NewHandler constructs the suppliers page handler.
func NewHandler(logger *slog.Logger, ctrl *controller.Controller[warehouse.Supplier, warehouse.SupplierCreate], templates *view.Engine) *Handler {
	return &Handler{logger: logger, ctrl: ctrl, templates: templates}
}

// MountRoutes registers supplier routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/new", h.handleNew)
	r.Post("/", h.handleCreate)
	r.Post("/close", h.handleClose)
	r.Post("/notices/dismiss", h.handleDismiss)
}

type indexData struct {
	State    controller.State[warehouse.Supplier]
	BasePath string
}

type formData struct {
	Form   forms.SupplierForm
	Errors map[string]string
	Error  string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Refresh(r.Context()); err != nil {
		h.logger.Error("refresh suppliers", slog.Any("error", err))
	}
	snap := h.ctrl.Snapshot()
	h.render(w, http.StatusOK, "pages/suppliers/index.html", view.TemplateData{
		Title:       "Supplier Management",
		CurrentPath: r.URL.Path,
		Data:        indexData{State: snap, BasePath: "/suppliers"},
	})
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	h.ctrl.OpenDialog()
	h.renderForm(w, r, forms.SupplierForm{}, map[string]string{}, "", http.StatusOK)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form, errs := forms.ParseSupplierForm(r.PostForm)
	if len(errs) > 0 {
		h.renderForm(w, r, form, errs, "", http.StatusBadRequest)
		return
	}
	if err := h.ctrl.SubmitCreate(r.Context(), form.Payload()); err != nil {
		h.logger.Error("create supplier failed", slog.Any("error", err))
		general := h.ctrl.Snapshot().Error
		if general == "" {
			general = Notices.CreateFailed
		}
		h.renderForm(w, r, form, map[string]string{}, general, http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/suppliers", http.StatusSeeOther)
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	h.ctrl.CloseDialog()
	http.Redirect(w, r, "/suppliers", http.StatusSeeOther)
}

func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	h.ctrl.DismissNotice()
	http.Redirect(w, r, "/suppliers", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, form forms.SupplierForm, errs map[string]string, general string, status int) {
	h.render(w, status, "pages/suppliers/form.html", view.TemplateData{
		Title:       "Add New Supplier",
		CurrentPath: r.URL.Path,
		Data:        formData{Form: form, Errors: errs, Error: general},
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
