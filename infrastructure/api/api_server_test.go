package api_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	housing "github.com/ynstf/boston-housing-api"
	"github.com/ynstf/boston-housing-api/infrastructure/api"
)

const createBody = `{"rm": 6.5, "lstat": 4.98, "dis": 6.0, "tax": 296, "ptratio": 15.3, "age": 65.2, "indus": 2.31, "medv": 24.0}`

func newTestServer(t *testing.T, opts ...housing.Option) http.Handler {
	t.Helper()
	opts = append([]housing.Option{
		housing.WithSQLite(filepath.Join(t.TempDir(), "test.db")),
	}, opts...)

	client, err := housing.New(opts...)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	server := api.NewAPIServer(client)
	router := server.Router()
	server.MountRoutes()
	return router
}

func TestAPIServer_RoutesMounted(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"list homes", http.MethodGet, "/homes/", "", http.StatusOK},
		{"create home", http.MethodPost, "/homes/", createBody, http.StatusCreated},
		{"predict", http.MethodPost, "/predict/", `{"rm": 6.5, "lstat": 4.98, "dis": 6.0, "tax": 296, "ptratio": 15.3, "age": 65.2, "indus": 2.31}`, http.StatusOK},
		{"recommend", http.MethodGet, "/recommendation/?price=240000", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestAPIServer_WriteProtection(t *testing.T) {
	handler := newTestServer(t, housing.WithAPIKeys("secret"))

	// Reads stay open.
	req := httptest.NewRequest(http.MethodGet, "/homes/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /homes/ status = %d, want %d", w.Code, http.StatusOK)
	}

	// Writes need the key.
	req = httptest.NewRequest(http.MethodPost, "/homes/", strings.NewReader(createBody))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("POST /homes/ without key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodPost, "/homes/", strings.NewReader(createBody))
	req.Header.Set("X-API-KEY", "secret")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("POST /homes/ with key: status = %d, want %d, body = %s", w.Code, http.StatusCreated, w.Body.String())
	}
}
