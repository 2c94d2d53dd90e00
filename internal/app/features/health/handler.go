package health

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Table *routetable.Table
	Log   *zap.Logger
}

// NewHandler constructs a health Handler with the route table and logger.
func NewHandler(table *routetable.Table, logger *zap.Logger) *Handler {
	return &Handler{
		Table: table,
		Log:   logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Routes  int    `json:"routes"`
	Message string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "routes":3 }
//
// With no routes loaded: 503 and
//
//	{ "status":"error", "routes":0, "message":"Route table is empty" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{Status: "ok"}
	if h.Table != nil {
		resp.Routes = h.Table.Len()
	}

	if resp.Routes == 0 {
		h.Log.Error("health-check: route table is empty")
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Message = "Route table is empty"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
