package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/meridian/internal/geocoding"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of the HTTP API. Provider, ProviderName, Repo and DB may be left empty:
// address queries and segment storage are then not offered.
type Deps struct {
	Log          *slog.Logger
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	Provider     geocoding.Provider
	ProviderName string
	Repo         repository.Interface
	DB           Pinger
}

// NewRouter wires the handlers with their dependencies and returns an http.Handler.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	mh := &MidpointHandler{
		log:          deps.Log,
		metrics:      deps.Metrics,
		provider:     deps.Provider,
		providerName: deps.ProviderName,
	}
	mux.HandleFunc("GET /v1/midpoint", mh.Query)
	mux.HandleFunc("POST /v1/midpoint", mh.GeoJSON)

	if deps.Repo != nil {
		sh := &SegmentHandler{log: deps.Log, repo: deps.Repo}
		mux.HandleFunc("POST /v1/segments", sh.Create)
		mux.HandleFunc("GET /v1/segments/{id}", sh.Get)
	}

	hh := &HealthHandler{log: deps.Log, db: deps.DB}
	mux.HandleFunc("GET /healthz", hh.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	return requestID(logging(deps.Log, deps.Metrics, mux))
}
