package landing

import (
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/gatehouse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// Handler serves the landing page. Everything it shows comes from the
// shared view data, so it holds no dependencies.
type Handler struct{}

var _ routetable.View = (*Handler)(nil)

func NewHandler() *Handler {
	return &Handler{}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "landing", h.data(r))
}

func (h *Handler) Fragment(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "landing_fragment", h.data(r))
}

func (h *Handler) data(r *http.Request) any {
	return struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
	}
}
