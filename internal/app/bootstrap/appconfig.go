// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (GATEHOUSE_*), configuration
// files, or command-line flags (loaded in LoadConfig). Ports, TLS, log level
// and timeouts belong to WAFFLE's CoreConfig.
type AppConfig struct {
	// Site presentation
	SiteName   string // Shown in the header and page titles
	FooterHTML string // Plain text or HTML; HTML is sanitized before rendering

	// Static assets
	StaticDir string // Directory served under /static/

	// Navigation
	HistoryNav   bool // Answer htmx navigation requests with fragments
	NotFoundPage bool // Render a not-found view for unknown paths instead of chi's plain 404

	// Observability
	MetricsEnabled bool // Expose /metrics
}
