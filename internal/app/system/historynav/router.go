// Package historynav binds a route table to browser-history navigation.
//
// Every entry in the table becomes a GET route. A direct page load receives
// the view's full page. An htmx navigation request (a boosted link or a
// request aimed at the content region) receives only the view's fragment;
// htmx swaps it into the page and pushes the URL onto the history stack, so
// switching views never reloads the document.
package historynav

import (
	"context"
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/waffle/pantry/requestid"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContentTarget is the id of the element that holds the swappable view.
const ContentTarget = "content"

// UnmatchedRoute is the route name reported to observers for unmatched paths.
const UnmatchedRoute = "(unmatched)"

// Mode tells how a view was rendered.
type Mode string

const (
	ModePage     Mode = "page"
	ModeFragment Mode = "fragment"
)

// Observer is notified after each dispatch.
type Observer interface {
	Observe(route string, mode Mode)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(route string, mode Mode)

func (f ObserverFunc) Observe(route string, mode Mode) { f(route, mode) }

// Option configures a Router.
type Option func(*Router)

// WithNotFound renders v with status 404 for paths not in the table.
// Without it, chi's default 404 response is used.
func WithNotFound(v routetable.View) Option {
	return func(rt *Router) { rt.notFound = v }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(rt *Router) {
		if o != nil {
			rt.observers = append(rt.observers, o)
		}
	}
}

// WithFragments toggles fragment responses for history navigation.
// When disabled every request gets the full page. Enabled by default.
func WithFragments(enabled bool) Option {
	return func(rt *Router) { rt.fragments = enabled }
}

// Router dispatches requests to the views of a route table.
// It is built once at startup and is safe for concurrent use.
type Router struct {
	table     *routetable.Table
	log       *zap.Logger
	notFound  routetable.View
	observers []Observer
	fragments bool
}

// New binds table to a Router.
func New(table *routetable.Table, logger *zap.Logger, opts ...Option) *Router {
	rt := &Router{
		table:     table,
		log:       logger,
		fragments: true,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Table returns the route table the router was built from.
func (rt *Router) Table() *routetable.Table {
	return rt.table
}

// Routes returns a chi router with one GET route per table entry.
// Mount it at "/".
func (rt *Router) Routes() chi.Router {
	r := chi.NewRouter()
	for _, e := range rt.table.Entries() {
		r.Get(e.Path, rt.dispatch(e))
	}
	if rt.notFound != nil {
		r.NotFound(rt.serveNotFound)
	}
	return r
}

func (rt *Router) dispatch(e routetable.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(context.WithValue(r.Context(), currentKey, e))
		mode := rt.render(w, r, e.View, 0)

		rt.log.Debug("route dispatched",
			zap.String("route", e.Name),
			zap.String("path", r.URL.Path),
			zap.String("mode", string(mode)),
			requestid.Field(r.Context()))
		rt.notify(e.Name, mode)
	}
}

func (rt *Router) serveNotFound(w http.ResponseWriter, r *http.Request) {
	mode := rt.render(w, r, rt.notFound, http.StatusNotFound)

	rt.log.Info("no route for path",
		zap.String("path", r.URL.Path),
		requestid.Field(r.Context()))
	rt.notify(UnmatchedRoute, mode)
}

// render picks page or fragment. Responses vary on HX-Request so caches keep
// both representations apart. A zero status leaves the status to the view;
// otherwise the headers are final once the status is written, so the content
// type is set here.
func (rt *Router) render(w http.ResponseWriter, r *http.Request, v routetable.View, status int) Mode {
	w.Header().Add("Vary", "HX-Request")
	if status != 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	if rt.fragments && IsHistoryNav(r) {
		v.Fragment(w, r)
		return ModeFragment
	}
	v.Page(w, r)
	return ModePage
}

func (rt *Router) notify(route string, mode Mode) {
	for _, o := range rt.observers {
		o.Observe(route, mode)
	}
}

// IsHistoryNav reports whether r is an in-page navigation issued by htmx.
// History restores after a cache miss ask for the full page.
func IsHistoryNav(r *http.Request) bool {
	if r.Header.Get("HX-Request") != "true" {
		return false
	}
	if r.Header.Get("HX-History-Restore-Request") == "true" {
		return false
	}
	return r.Header.Get("HX-Boosted") == "true" || r.Header.Get("HX-Target") == ContentTarget
}

type ctxKey string

const currentKey ctxKey = "historynav.current"

// Current returns the entry that matched r, if any.
func Current(r *http.Request) (routetable.Entry, bool) {
	e, ok := r.Context().Value(currentKey).(routetable.Entry)
	return e, ok
}
