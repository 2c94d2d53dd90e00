package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	landingfeature "github.com/dalemusser/gatehouse/internal/app/features/landing"
	loginfeature "github.com/dalemusser/gatehouse/internal/app/features/login"
	signupfeature "github.com/dalemusser/gatehouse/internal/app/features/signup"
	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/gatehouse/internal/app/system/viewdata"
	"github.com/dalemusser/gatehouse/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestNewRouteTable_CanonicalRoutes(t *testing.T) {
	table, err := newRouteTable(testLogger())
	if err != nil {
		t.Fatalf("newRouteTable() error = %v", err)
	}

	want := []struct{ path, name string }{
		{"/", "Landing"},
		{"/login", "Login"},
		{"/signup", "Signup"},
	}
	entries := table.Entries()
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Path != w.path || entries[i].Name != w.name {
			t.Errorf("entry %d = %s %s, want %s %s", i, entries[i].Path, entries[i].Name, w.path, w.name)
		}
	}

	views := map[string]func(routetable.View) bool{
		"/":       func(v routetable.View) bool { _, ok := v.(*landingfeature.Handler); return ok },
		"/login":  func(v routetable.View) bool { _, ok := v.(*loginfeature.Handler); return ok },
		"/signup": func(v routetable.View) bool { _, ok := v.(*signupfeature.Handler); return ok },
	}
	for path, isWant := range views {
		e, ok := table.Lookup(path)
		if !ok {
			t.Errorf("Lookup(%s) found nothing", path)
			continue
		}
		if !isWant(e.View) {
			t.Errorf("%s is bound to %T", path, e.View)
		}
	}
}

func TestNewRouteTable_NamesUnique(t *testing.T) {
	table, err := newRouteTable(testLogger())
	if err != nil {
		t.Fatalf("newRouteTable() error = %v", err)
	}

	seen := map[string]bool{}
	for _, e := range table.Entries() {
		if seen[e.Name] {
			t.Errorf("duplicate route name %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func stubTable() *routetable.Table {
	return routetable.MustNew(
		routetable.Entry{Path: "/", Name: "Landing", View: testutil.NewStubView("Landing")},
		routetable.Entry{Path: "/login", Name: "Login", View: testutil.NewStubView("Login")},
		routetable.Entry{Path: "/signup", Name: "Signup", View: testutil.NewStubView("Signup")},
	)
}

func testAppConfig() AppConfig {
	return AppConfig{
		SiteName:       "Test",
		StaticDir:      "testdata",
		HistoryNav:     true,
		MetricsEnabled: true,
	}
}

func TestBuildRouter_DispatchesTableRoutes(t *testing.T) {
	h := buildRouter(testAppConfig(), stubTable(), testLogger())

	tests := map[string]string{
		"/":       "page:Landing",
		"/login":  "page:Login",
		"/signup": "page:Signup",
	}
	for path, want := range tests {
		rec := testutil.NewRecorder()
		h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, path))

		rec.AssertStatus(t, http.StatusOK)
		if rec.Body.String() != want {
			t.Errorf("GET %s body = %q, want %q", path, rec.Body.String(), want)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Errorf("GET %s missing X-Request-ID header", path)
		}
	}
}

// requestIDView records the request ID the view data picked up.
type requestIDView struct {
	id string
}

func (v *requestIDView) Page(w http.ResponseWriter, r *http.Request) {
	v.id = viewdata.NewBaseVM(r, "", "/").RequestID
}

func (v *requestIDView) Fragment(w http.ResponseWriter, r *http.Request) { v.Page(w, r) }

func TestBuildRouter_RequestIDReachesViewData(t *testing.T) {
	view := &requestIDView{}
	tbl := routetable.MustNew(routetable.Entry{Path: "/", Name: "Landing", View: view})
	h := buildRouter(testAppConfig(), tbl, testLogger())

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	header := rec.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatal("missing X-Request-ID header")
	}
	if view.id != header {
		t.Errorf("view data RequestID = %q, response header = %q", view.id, header)
	}
}

func TestBuildRouter_HistoryNavigation(t *testing.T) {
	h := buildRouter(testAppConfig(), stubTable(), testLogger())

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewHistoryNavRequest("/login"))

	if rec.Body.String() != "fragment:Login" {
		t.Errorf("body = %q, want fragment:Login", rec.Body.String())
	}
}

func TestBuildRouter_HistoryNavigationDisabled(t *testing.T) {
	cfg := testAppConfig()
	cfg.HistoryNav = false
	h := buildRouter(cfg, stubTable(), testLogger())

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewHistoryNavRequest("/login"))

	if rec.Body.String() != "page:Login" {
		t.Errorf("body = %q, want page:Login", rec.Body.String())
	}
}

func TestBuildRouter_UnmatchedPath(t *testing.T) {
	// Unknown paths match no table entry; only check that none of the
	// declared views answered.
	h := buildRouter(testAppConfig(), stubTable(), testLogger())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/nonexistent"))

	for _, name := range []string{"Landing", "Login", "Signup"} {
		if strings.Contains(rec.Body.String(), ":"+name) {
			t.Errorf("/nonexistent rendered %s", name)
		}
	}
}

func TestBuildRouter_HealthAndMetrics(t *testing.T) {
	h := buildRouter(testAppConfig(), stubTable(), testLogger())

	// One page view so the counter has a sample.
	h.ServeHTTP(httptest.NewRecorder(), testutil.NewRequest(http.MethodGet, "/signup"))

	health := testutil.NewRecorder()
	h.ServeHTTP(health, testutil.NewRequest(http.MethodGet, "/health"))
	health.AssertStatus(t, http.StatusOK)
	health.AssertContains(t, `"routes":3`)

	metrics := testutil.NewRecorder()
	h.ServeHTTP(metrics, testutil.NewRequest(http.MethodGet, "/metrics"))
	metrics.AssertStatus(t, http.StatusOK)
	metrics.AssertContains(t, `gatehouse_route_dispatches_total{mode="page",route="Signup"} 1`)
}

func TestBuildRouter_MetricsDisabled(t *testing.T) {
	cfg := testAppConfig()
	cfg.MetricsEnabled = false
	h := buildRouter(cfg, stubTable(), testLogger())

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/metrics"))

	if strings.Contains(rec.Body.String(), "gatehouse_route_dispatches_total") {
		t.Error("/metrics served while disabled")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"valid", AppConfig{SiteName: "Test", StaticDir: "testdata"}, false},
		{"empty site name", AppConfig{SiteName: "", StaticDir: "testdata"}, true},
		{"missing static dir", AppConfig{SiteName: "Test", StaticDir: "testdata/missing"}, true},
		{"static dir is a file", AppConfig{SiteName: "Test", StaticDir: "testdata/app.css"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(nil, tt.cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
