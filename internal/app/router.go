package app

import (
	"net/http"

	"financial-assistant/internal/handlers"
	"financial-assistant/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const metricsPath = "/metrics"

// Router builds the echo instance serving the HTTP API. The returned rate
// limiter must be run alongside the server to evict idle clients.
func (a *App) Router() (*echo.Echo, *middleware.RateLimiter) {
	cfg := a.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	limiter := middleware.NewRateLimiter(float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(metricsPath))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	e.Use(limiter.Middleware())

	var db *gorm.DB
	if a.db != nil {
		db = a.db.DB
	}

	health := handlers.NewHealthCheckHandler(a.Index, a.LLM, db, cfg.Server.Version)
	search := handlers.NewSearchHandler(a.Search)
	transactions := handlers.NewTransactionHandler(a.Catalog)
	summary := handlers.NewSummaryHandler(a.Catalog, a.Summary, a.LLM, a.Audit, a.Metrics)
	admin := handlers.NewAdminHandler(a.Indexer, a.Index)

	e.GET("/", health.HealthCheck)
	e.GET("/health", health.HealthCheck)
	e.GET(metricsPath, echo.WrapHandler(a.metricsHandler()))

	api := e.Group("/api")
	api.POST("/search", search.Search)
	api.GET("/search", search.SearchGet)
	api.GET("/transactions", transactions.ListTransactions)
	api.GET("/categories", transactions.Categories)
	api.GET("/users", transactions.Users)
	api.GET("/stats", transactions.Stats)
	api.POST("/summary", summary.Summary)
	api.POST("/summarize", summary.Summarize)
	api.POST("/ask", summary.Ask)

	adminGroup := api.Group("/admin", middleware.RequireAdmin(a.Tokens))
	adminGroup.POST("/reindex", admin.Reindex)
	adminGroup.POST("/reload", admin.Reload)

	return e, limiter
}

func (a *App) metricsHandler() http.Handler {
	if g, ok := a.registry.(prometheus.Gatherer); ok && a.registry != prometheus.DefaultRegisterer {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
