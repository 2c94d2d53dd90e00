package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewHistoryNavRequest creates a GET request shaped like an htmx boosted link
// click, which the router answers with a fragment.
func NewHistoryNavRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Boosted", "true")
	return req
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// StubView is a view that writes "page:<name>" or "fragment:<name>" and
// counts its calls. It stands in for template-backed views in router tests.
type StubView struct {
	Name string

	mu        sync.Mutex
	pages     int
	fragments int
}

// NewStubView returns a StubView labelled name.
func NewStubView(name string) *StubView {
	return &StubView{Name: name}
}

func (v *StubView) Page(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	v.pages++
	v.mu.Unlock()
	_, _ = w.Write([]byte("page:" + v.Name))
}

func (v *StubView) Fragment(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	v.fragments++
	v.mu.Unlock()
	_, _ = w.Write([]byte("fragment:" + v.Name))
}

// Calls returns how many times Page and Fragment ran.
func (v *StubView) Calls() (pages, fragments int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pages, v.fragments
}
