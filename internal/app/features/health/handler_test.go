package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/gatehouse/internal/app/features/health"
	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/gatehouse/internal/testutil"
	"go.uber.org/zap"
)

type healthBody struct {
	Status  string `json:"status"`
	Routes  int    `json:"routes"`
	Message string `json:"message"`
}

func serve(t *testing.T, tbl *routetable.Table) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	handler := health.NewHandler(tbl, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_RoutesLoaded(t *testing.T) {
	tbl := routetable.MustNew(
		routetable.Entry{Path: "/", Name: "Landing", View: testutil.NewStubView("Landing")},
		routetable.Entry{Path: "/login", Name: "Login", View: testutil.NewStubView("Login")},
	)

	rec, body := serve(t, tbl)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if contentType := rec.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}
	if body.Status != "ok" {
		t.Errorf("status: got %q, want %q", body.Status, "ok")
	}
	if body.Routes != 2 {
		t.Errorf("routes: got %d, want 2", body.Routes)
	}
}

func TestServe_NoTable(t *testing.T) {
	rec, body := serve(t, nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.Status != "error" {
		t.Errorf("status: got %q, want %q", body.Status, "error")
	}
}
