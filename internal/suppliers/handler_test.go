package suppliers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wareview/wareview/internal/controller"
	"github.com/wareview/wareview/internal/view"
	"github.com/wareview/wareview/internal/warehouse"
)

// fakeBackend emulates the remote supplier endpoints in memory.
type fakeBackend struct {
	mu        sync.Mutex
	suppliers []warehouse.Supplier
	nextID    int64
	failList  bool
	failBody  string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/suppliers/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			if b.failList {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"detail":"boom"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(b.suppliers)
		case http.MethodPost:
			if b.failBody != "" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(b.failBody))
				return
			}
			var payload warehouse.SupplierCreate
			_ = json.NewDecoder(r.Body).Decode(&payload)
			created := warehouse.Supplier{
				ID:            b.nextID,
				Name:          payload.Name,
				ContactPerson: payload.ContactPerson,
				Email:         payload.Email,
				Phone:         payload.Phone,
			}
			b.nextID++
			b.suppliers = append(b.suppliers, created)
			_ = json.NewEncoder(w).Encode(created)
		}
	})
	return mux
}

func newSupplierRouter(t *testing.T, backend *fakeBackend) (chi.Router, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	templates, err := view.NewEngine()
	require.NoError(t, err)

	api := warehouse.NewClient(server.URL, server.Client())
	ctrl := controller.New[warehouse.Supplier, warehouse.SupplierCreate](warehouse.Suppliers{Client: api}, Notices)
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), ctrl, templates)

	r := chi.NewRouter()
	r.Route("/suppliers", handler.MountRoutes)
	return r, server
}

func postForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSupplierShowsSuccessAndNewRow(t *testing.T) {
	router, _ := newSupplierRouter(t, newFakeBackend())

	rec := postForm(router, "/suppliers", url.Values{
		"name":           {"Acme"},
		"contact_person": {"Jo Field"},
		"email":          {"sales@acme.test"},
		"phone":          {"555-0100"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/suppliers", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/suppliers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Supplier created successfully!")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "sales@acme.test")
}

func TestCreateSupplierValidationNeverReachesBackend(t *testing.T) {
	backend := newFakeBackend()
	router, _ := newSupplierRouter(t, backend)

	rec := postForm(router, "/suppliers", url.Values{
		"name":  {"   "},
		"email": {"not-an-email"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Name is required")
	assert.Contains(t, body, "Email must be a valid email address")

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Empty(t, backend.suppliers, "invalid form must not create anything")
}

func TestCreateSupplierServerDetailShownVerbatim(t *testing.T) {
	backend := newFakeBackend()
	backend.failBody = `{"detail":"Supplier with this email already exists"}`
	router, _ := newSupplierRouter(t, backend)

	rec := postForm(router, "/suppliers", url.Values{
		"name":  {"Acme"},
		"email": {"sales@acme.test"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Supplier with this email already exists")
}

func TestListFailureShowsFetchNotice(t *testing.T) {
	backend := newFakeBackend()
	backend.failList = true
	router, _ := newSupplierRouter(t, backend)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/suppliers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch suppliers. Please try again.")
}
