package historynav

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

type navigateOptions struct {
	replace bool
	query   url.Values
}

// NavigateOption configures Navigate.
type NavigateOption func(*navigateOptions)

// WithReplace replaces the current history entry instead of pushing a new one.
func WithReplace() NavigateOption {
	return func(o *navigateOptions) { o.replace = true }
}

// WithQuery appends query parameters to the target URL.
func WithQuery(q url.Values) NavigateOption {
	return func(o *navigateOptions) { o.query = q }
}

// location is the JSON form of the HX-Location header.
type location struct {
	Path   string `json:"path"`
	Target string `json:"target"`
}

// Navigate sends the client to the named route.
//
// htmx requests navigate in place: by default the response carries an
// HX-Location header so htmx fetches the target fragment and pushes its URL.
// With WithReplace the target fragment is rendered directly and the current
// history entry is replaced. Other requests get a 303 See Other.
func (rt *Router) Navigate(w http.ResponseWriter, r *http.Request, name string, opts ...NavigateOption) error {
	var o navigateOptions
	for _, opt := range opts {
		opt(&o)
	}

	target, err := rt.table.URLFor(name)
	if err != nil {
		return err
	}
	entry, _ := rt.table.ByName(name)

	if len(o.query) > 0 {
		target += "?" + o.query.Encode()
	}

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return nil
	}

	if o.replace {
		w.Header().Set("HX-Replace-Url", target)
		w.Header().Set("HX-Retarget", "#"+ContentTarget)
		r = r.WithContext(context.WithValue(r.Context(), currentKey, entry))
		entry.View.Fragment(w, r)
		rt.notify(entry.Name, ModeFragment)
		return nil
	}

	loc, err := json.Marshal(location{Path: target, Target: "#" + ContentTarget})
	if err != nil {
		return err
	}
	w.Header().Set("HX-Location", string(loc))
	w.Header().Add("Vary", "HX-Request")
	w.WriteHeader(http.StatusNoContent)

	rt.log.Debug("client navigation issued",
		zap.String("route", entry.Name),
		zap.String("target", target))
	return nil
}
