// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/gatehouse/internal/app/features/errors"
	healthfeature "github.com/dalemusser/gatehouse/internal/app/features/health"
	landingfeature "github.com/dalemusser/gatehouse/internal/app/features/landing"
	loginfeature "github.com/dalemusser/gatehouse/internal/app/features/login"
	signupfeature "github.com/dalemusser/gatehouse/internal/app/features/signup"
	"github.com/dalemusser/gatehouse/internal/app/system/historynav"
	"github.com/dalemusser/gatehouse/internal/app/system/navmetrics"
	"github.com/dalemusser/gatehouse/internal/app/system/routetable"
	"github.com/dalemusser/gatehouse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/requestid"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// metricsNamespace prefixes every exported metric.
const metricsNamespace = "gatehouse"

// newRouteTable declares the application's one route table.
func newRouteTable(logger *zap.Logger) (*routetable.Table, error) {
	return routetable.New(
		routetable.Entry{Path: "/", Name: "Landing", View: landingfeature.NewHandler()},
		routetable.Entry{Path: "/login", Name: "Login", View: loginfeature.NewHandler(logger)},
		routetable.Entry{Path: "/signup", Name: "Signup", View: signupfeature.NewHandler()},
	)
}

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// It boots the template engine, builds and validates the route table, and
// mounts the history-navigation router at "/" next to the health, metrics
// and static endpoints.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	table, err := newRouteTable(logger)
	if err != nil {
		logger.Error("route table invalid", zap.Error(err))
		return nil, err
	}
	viewdata.Init(appCfg.SiteName, appCfg.FooterHTML, table)

	return buildRouter(appCfg, table, logger), nil
}

// buildRouter assembles the chi router around an already validated table.
func buildRouter(appCfg AppConfig, table *routetable.Table, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Simple())

	opts := []historynav.Option{historynav.WithFragments(appCfg.HistoryNav)}
	if appCfg.NotFoundPage {
		opts = append(opts, historynav.WithNotFound(errorsfeature.NewNotFound()))
	}

	// Metrics
	if appCfg.MetricsEnabled {
		m := navmetrics.New(metricsNamespace)
		opts = append(opts, historynav.WithObserver(m))
		r.Handle("/metrics", m.Handler())
	}

	// Health check endpoint for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(table, logger)))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.StaticDir))

	// Pages
	nav := historynav.New(table, logger, opts...)
	r.Mount("/", nav.Routes())

	logger.Info("routes mounted",
		zap.Int("routes", table.Len()),
		zap.Bool("history_nav", appCfg.HistoryNav),
		zap.Bool("metrics", appCfg.MetricsEnabled))

	return r
}
