// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for gatehouse.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, static_dir, etc.
//   - Environment variables: GATEHOUSE_SITE_NAME, GATEHOUSE_STATIC_DIR, etc.
//   - Command-line flags: --site_name, --static_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: "Gatehouse", Desc: "Site name shown in the header and page titles"},
	{Name: "footer_html", Default: "", Desc: "Footer text or HTML (sanitized)"},
	{Name: "static_dir", Default: "public", Desc: "Directory served under /static/"},
	{Name: "history_nav", Default: true, Desc: "Answer htmx navigation requests with content fragments"},
	{Name: "not_found_page", Default: true, Desc: "Render a not-found page for unknown paths"},
	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics at /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// Precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GATEHOUSE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:       strings.TrimSpace(appValues.String("site_name")),
		FooterHTML:     appValues.String("footer_html"),
		StaticDir:      appValues.String("static_dir"),
		HistoryNav:     appValues.Bool("history_nav"),
		NotFoundPage:   appValues.Bool("not_found_page"),
		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SiteName == "" {
		return fmt.Errorf("site_name must not be empty")
	}

	info, err := os.Stat(appCfg.StaticDir)
	if err != nil {
		logger.Error("static directory unavailable",
			zap.String("static_dir", appCfg.StaticDir), zap.Error(err))
		return fmt.Errorf("static_dir %q: %w", appCfg.StaticDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static_dir %q is not a directory", appCfg.StaticDir)
	}

	return nil
}
