package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/mutual-fund-explorer-backend/internal/api/middleware"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/config"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/logger"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	schemeService *service.SchemeService,
	analyticsService *service.AnalyticsService,
	cfg *config.Config,
	log *logger.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(systemService)
	schemeHandler := handlers.NewSchemeHandler(schemeService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Get("/mf", schemeHandler.ListSchemes)
		r.Get("/compare", analyticsHandler.Compare)

		r.Route("/scheme/{code}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateSchemeCodeMiddleware)

			r.Get("/", schemeHandler.Scheme)
			r.Get("/returns", analyticsHandler.Returns)
			r.Get("/returns/summary", analyticsHandler.ReturnsSummary)
			r.Post("/sip", analyticsHandler.SIP)
			r.Post("/lumpsum", analyticsHandler.Lumpsum)
			r.Post("/swp", analyticsHandler.SWP)
			r.Get("/strategies", analyticsHandler.Strategies)
			r.Get("/chart", analyticsHandler.Chart)
			r.Get("/risk", analyticsHandler.Risk)
		})
	})

	return r
}
