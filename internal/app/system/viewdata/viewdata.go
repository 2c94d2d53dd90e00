// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/historynav"
	"github.com/dalemusser/gatehouse/internal/app/system/htmlsanitize"
	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/requestid"
)

// DefaultSiteName is used until Init is called.
const DefaultSiteName = "Gatehouse"

// NavLink is one entry of the site navigation.
type NavLink struct {
	Name   string
	Path   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/"),
//	}
type BaseVM struct {
	// Site settings (from config)
	SiteName   string
	FooterHTML template.HTML

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	RouteName   string // empty when no route matched

	// Navigation built from the route table
	Nav           []NavLink
	ContentTarget string

	RequestID string
}

type site struct {
	name   string
	footer template.HTML
	links  []NavLink
}

var current = site{name: DefaultSiteName}

// Init sets the site name, footer and navigation links.
// Call this once at startup from bootstrap. The footer may be plain text or
// HTML; HTML is sanitized.
func Init(name, footer string, table *routetable.Table) {
	s := site{
		name:   name,
		footer: htmlsanitize.PrepareForDisplay(footer),
	}
	if s.name == "" {
		s.name = DefaultSiteName
	}
	if table != nil {
		for _, e := range table.Entries() {
			s.links = append(s.links, NavLink{Name: e.Name, Path: e.Path})
		}
	}
	current = s
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:      current.name,
		FooterHTML:    current.footer,
		Title:         title,
		BackURL:       httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:   httpnav.CurrentPath(r),
		ContentTarget: historynav.ContentTarget,
		RequestID:     requestid.FromRequest(r),
	}

	if e, ok := historynav.Current(r); ok {
		vm.RouteName = e.Name
	}

	vm.Nav = make([]NavLink, len(current.links))
	for i, l := range current.links {
		l.Active = l.Name == vm.RouteName
		vm.Nav[i] = l
	}

	return vm
}

// LinkTo returns the path of the named route, or "" if it is not in the
// navigation. Templates use it as {{.LinkTo "Signup"}}.
func (vm BaseVM) LinkTo(name string) string {
	for _, l := range vm.Nav {
		if l.Name == name {
			return l.Path
		}
	}
	return ""
}
