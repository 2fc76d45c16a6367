package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/username/holiday-calendar/internal/metrics"
	"go.uber.org/zap"
)

// Router wires the API handlers, middleware and /metrics
type Router struct {
	handler  *Handler
	gatherer prometheus.Gatherer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewRouter creates a new Router
func NewRouter(handler *Handler, gatherer prometheus.Gatherer, m *metrics.Metrics, logger *zap.Logger) *Router {
	return &Router{
		handler:  handler,
		gatherer: gatherer,
		metrics:  m,
		logger:   logger,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (r *Router) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, req)

		path := req.URL.Path
		if route := mux.CurrentRoute(req); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}

		duration := time.Since(start)
		if r.metrics != nil {
			r.metrics.HTTPRequestDuration.WithLabelValues(path, req.Method).Observe(duration.Seconds())
			r.metrics.HTTPRequestsTotal.WithLabelValues(path, req.Method, strconv.Itoa(rec.statusCode)).Inc()
		}

		r.logger.Info("HTTP request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("query", req.URL.RawQuery),
			zap.Int("status", rec.statusCode),
			zap.Duration("duration", duration),
			zap.String("remote_addr", req.RemoteAddr))
	})
}

// SetupRoutes returns the root handler
func (r *Router) SetupRoutes() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(r.loggingMiddleware)
	api.HandleFunc("/holiday", r.handler.HolidayHandler).Methods(http.MethodGet)
	api.HandleFunc("/years/{year:[0-9]{4}}", r.handler.YearHandler).Methods(http.MethodGet)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return router
}
