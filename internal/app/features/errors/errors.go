// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/gatehouse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// NotFound is the view rendered for paths outside the route table.
// The router writes the 404 status before calling it.
type NotFound struct{}

var _ routetable.View = (*NotFound)(nil)

// NewNotFound constructs the not-found view.
func NewNotFound() *NotFound {
	return &NotFound{}
}

func (h *NotFound) data(r *http.Request) pageData {
	return pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found", "/"),
		Message: "There is nothing at this address.",
	}
}

// Page renders the full not-found document.
func (h *NotFound) Page(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "error_not_found", h.data(r))
}

// Fragment renders the not-found message for in-place navigation.
func (h *NotFound) Fragment(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "error_not_found_fragment", h.data(r))
}
