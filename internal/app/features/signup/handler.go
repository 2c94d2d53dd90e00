// internal/app/features/signup/handler.go
package signup

import (
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/gatehouse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// Handler renders the signup view (form only).
type Handler struct{}

var _ routetable.View = (*Handler)(nil)

func NewHandler() *Handler {
	return &Handler{}
}

type signupFormData struct {
	viewdata.BaseVM
	FullName string
	Email    string
}

func (h *Handler) data(r *http.Request) signupFormData {
	return signupFormData{
		BaseVM:   viewdata.NewBaseVM(r, "Create account", "/"),
		FullName: query.Get(r, "full_name"),
		Email:    query.Get(r, "email"),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /signup                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "signup", h.data(r))
}

func (h *Handler) Fragment(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "signup_fragment", h.data(r))
}
