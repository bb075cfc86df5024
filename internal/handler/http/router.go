package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glowmart/catalog-service/internal/service"
	"github.com/glowmart/catalog-service/pkg/health"
	"github.com/glowmart/catalog-service/pkg/middleware"
)

// NewRouter creates a chi router with all catalog service routes registered.
// Read endpoints are public; write endpoints require a valid admin token.
func NewRouter(
	catalogService *service.CatalogService,
	adminService *service.AdminService,
	validateToken middleware.TokenValidator,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("catalog"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	productHandler := NewProductHandler(catalogService, logger)
	relationHandler := NewRelationHandler(catalogService, logger)
	adminHandler := NewAdminHandler(adminService, logger)

	requireAuth := middleware.Auth(validateToken)

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Public catalog reads
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)
		r.Get("/{id}/images", relationHandler.ListImages)
		r.Get("/{id}/colors", relationHandler.ListColors)
		r.Get("/{id}/sizes", relationHandler.ListSizes)

		// Admin-only writes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/", productHandler.CreateProduct)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)

			r.Post("/{id}/images", relationHandler.AddImage)
			r.Post("/{id}/colors", relationHandler.AddColor)
			r.Post("/{id}/sizes", relationHandler.AddSize)

			r.Put("/images/{id}", relationHandler.UpdateImage)
			r.Delete("/images/{id}", relationHandler.DeleteImage)
			r.Put("/colors/{id}", relationHandler.UpdateColor)
			r.Delete("/colors/{id}", relationHandler.DeleteColor)
			r.Put("/sizes/{id}", relationHandler.UpdateSize)
			r.Delete("/sizes/{id}", relationHandler.DeleteSize)
		})
	})

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/signup", adminHandler.Signup)
		r.Post("/login", adminHandler.Login)
	})

	return r
}
