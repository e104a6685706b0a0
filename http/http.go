package http

import (
	"net/http"
	"time"

	"github.com/nasdf/blogql"
	"github.com/nasdf/blogql/config"
	"github.com/nasdf/blogql/graphql"
	"github.com/nasdf/blogql/snapshot"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	// GraphQLPath is the endpoint that serves GraphQL operations.
	GraphQLPath = "/graphql"
	// MetricsPath is the endpoint that serves prometheus metrics.
	MetricsPath = "/metrics"
	// ExportPath is the endpoint that serves a CAR snapshot of the store.
	ExportPath = "/export"

	carContentType = "application/vnd.ipld.car"
)

// NewServer returns an http server bound to the configured address.
//
// A nil gatherer disables the metrics endpoint.
func NewServer(cfg config.ServerConfig, db *blogql.DB, log *zap.Logger, gatherer prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           Handler(cfg, db, log, gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Handler returns an http.Handler that serves every endpoint of the api.
func Handler(cfg config.ServerConfig, db *blogql.DB, log *zap.Logger, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	if cfg.Playground {
		mux.Handle("/{$}", playground.Handler("BlogQL", GraphQLPath))
	}
	mux.Handle(GraphQLPath, graphql.Handler(db))
	mux.Handle(ExportPath, exportHandler(db, log))
	if gatherer != nil {
		mux.Handle(MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return logRequests(log, mux)
}

func exportHandler(db *blogql.DB, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s, err := snapshot.Build(r.Context(), db.Store())
		if err != nil {
			log.Error("failed to build snapshot", zap.Error(err))
			http.Error(w, "failed to build snapshot", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", carContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="blogql.car"`)
		if err := s.Export(r.Context(), w); err != nil {
			log.Error("failed to write snapshot", zap.Error(err))
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
