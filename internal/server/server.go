package server

import (
	"context"
	"net/http"
	"time"

	"household-ledger/internal/config"
	"household-ledger/internal/handlers"
	"household-ledger/internal/middleware"
	"household-ledger/internal/repositories"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the long-lived collaborators the router is built from.
type Dependencies struct {
	Config     *config.Config
	Repository repositories.TransactionRepositoryInterface
	Store      handlers.HealthChecker
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Server is the HTTP surface of the ledger.
type Server struct {
	Echo        *echo.Echo
	rateLimiter *middleware.RateLimiter
}

// New wires services, handlers and middleware onto a fresh Echo instance.
func New(deps Dependencies) *Server {
	cfg := deps.Config
	loc := cfg.Ledger.Location

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	metrics := services.NewPrometheusMetrics(registerer)
	ledgerLogger := services.NewLedgerLogger(nil)
	transactionService := services.NewTransactionService(deps.Repository, loc, metrics, ledgerLogger)
	summaryService := services.NewSummaryService(transactionService, deps.Repository, services.SummaryOptions{
		Location:       loc,
		StrictIdentity: cfg.Ledger.StrictIdentity,
	}, metrics, ledgerLogger)
	tokenService := services.NewTokenService(&cfg.JWT)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("64K"))

	healthHandler := handlers.NewHealthCheckHandler(deps.Store, cfg.Database.Driver)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	requireAuth := middleware.RequireAuth(tokenService)
	optionalAuth := middleware.OptionalAuth(tokenService)

	api := e.Group("/api/v1", rateLimiter.Middleware())

	transactionHandler := handlers.NewTransactionHandler(transactionService, loc)
	api.POST("/transactions", transactionHandler.CreateTransaction, requireAuth)
	api.GET("/transactions", transactionHandler.ListTransactions, requireAuth)

	summaryHandler := handlers.NewSummaryHandler(summaryService, loc)
	api.GET("/summary/monthly", summaryHandler.GetMonthlyReport, requireAuth)
	api.GET("/summary/yearly", summaryHandler.GetYearlySummary, optionalAuth)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionService, tokenService, loc)
		api.POST("/dev/token", devHandler.IssueToken)
		api.POST("/dev/sample-data", devHandler.GenerateSampleData, requireAuth)
	}

	return &Server{Echo: e, rateLimiter: rateLimiter}
}

// Start serves on address until ctx is cancelled, then drains in-flight
// requests for at most the configured shutdown timeout.
func (s *Server) Start(ctx context.Context, address string, shutdownTimeout time.Duration) error {
	go s.rateLimiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(address); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Echo.Shutdown(shutdownCtx)
}
