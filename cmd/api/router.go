package api

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/chaotic-justice/payrecon/pkg/middleware"
)

// SetupRouter configures all routes and returns the HTTP service
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	registerReportRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)

	tracer := otel.GetTracerProvider().Tracer("payrecon/api")

	mws := []middleware.Middleware{
		middleware.RequestID("X-Request-ID"),
		middleware.Tracing(tracer),
	}
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter := rate.NewLimiter(
			rate.Limit(float64(deps.Config.Server.RateLimitPerSecond)),
			deps.Config.Server.RateLimitBurst,
		)
		mws = append(mws, middleware.RateLimit(limiter))
	}
	mws = append(mws,
		middleware.Recovery(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(),
	)

	handler := middleware.Chain(mux, mws...)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // For testing ONLY; narrow to specifics like "http://localhost:3000" once working. Avoid in prod.
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           7200, // Cache preflights for 2 hours
	})

	return corsHandler.Handler(handler)
}

// registerReportRoutes registers the report processing and download routes
func registerReportRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("POST /v1/reports/payments", deps.ReportHandler.ProcessPayments)
	mux.HandleFunc("POST /v1/reports/costco", deps.ReportHandler.ProcessCostco)
	mux.HandleFunc("POST /v1/sales", deps.SalesHandler.Process)
	mux.HandleFunc("GET /v1/downloads/{token}", deps.DownloadHandler.Get)

	deps.Logger.Info("registered report routes",
		"paths", []string{"/v1/reports/payments", "/v1/reports/costco", "/v1/sales", "/v1/downloads/{token}"})
}

// registerUtilityRoutes registers health check, metrics, and other utility routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			deps.Logger.Error("failed to write health response", slog.Any("error", err))
		}
	})
	deps.Logger.Info("registered health check", "path", "/health")

	// Readiness check endpoint
	mux.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ready")); err != nil {
			deps.Logger.Error("failed to write readiness response", slog.Any("error", err))
		}
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	// Metrics endpoint (Prometheus)
	if deps.Config.Observability.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
	}
}
