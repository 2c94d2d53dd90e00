// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/gatehouse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// Handler renders the login view. It only shows the form; nothing in this
// app accepts the submission.
type Handler struct {
	Log *zap.Logger
}

var _ routetable.View = (*Handler)(nil)

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	LoginID   string
	ReturnURL string
}

func (h *Handler) data(r *http.Request) loginFormData {
	ret := query.Get(r, "return")
	safe := urlutil.SafeReturn(ret, "", "")
	if ret != "" && safe != ret {
		h.Log.Debug("login: dropped unsafe return URL", zap.String("return", ret))
	}

	return loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		LoginID:   query.Get(r, "login_id"),
		ReturnURL: safe,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// Page renders the full login document.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", h.data(r))
}

// Fragment renders the login form for in-place navigation.
func (h *Handler) Fragment(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "login_fragment", h.data(r))
}
