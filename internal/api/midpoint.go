package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/meridian/internal/geocoding"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/pkg/geo"
	geojson "github.com/paulmach/go.geojson"
)

const maxBodyBytes = 1 << 20

var (
	// ErrNoProvider is returned when an address is given but no geocoding provider is configured.
	ErrNoProvider = errors.New("geocoding provider is not configured")
	// ErrMissingEndpoint is returned when neither coordinates nor an address describe an endpoint.
	ErrMissingEndpoint = errors.New("endpoint is required")
)

type MidpointHandler struct {
	log          *slog.Logger
	metrics      *metrics.Metrics
	provider     geocoding.Provider
	providerName string
}

// geocodeError marks a failure of the upstream provider, as opposed to bad input.
type geocodeError struct {
	err error
}

func (e *geocodeError) Error() string { return e.err.Error() }
func (e *geocodeError) Unwrap() error { return e.err }

// Query handles GET /v1/midpoint. Each endpoint is given either as "lng,lat" in from/to
// or as a free-form address in from_address/to_address.
func (h *MidpointHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := h.resolve(r.Context(), "from", q.Get("from"), q.Get("from_address"))
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}
	to, err := h.resolve(r.Context(), "to", q.Get("to"), q.Get("to_address"))
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	res := models.NewResult(from, to)
	if !res.Midpoint.IsFinite() {
		writeError(h.log, w, r, http.StatusUnprocessableEntity, "midpoint is not finite for the given coordinates")
		return
	}

	h.metrics.MidpointsComputed.WithLabelValues("api").Inc()
	writeJSON(h.log, w, r, http.StatusOK, res)
}

// GeoJSON handles POST /v1/midpoint with a FeatureCollection of exactly two Point features.
// The response is a Point feature carrying the segment length in its properties.
func (h *MidpointHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(h.log, w, r, http.StatusRequestEntityTooLarge, "request body is too large")
		return
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid GeoJSON feature collection")
		return
	}
	if len(fc.Features) != 2 {
		writeError(h.log, w, r, http.StatusBadRequest,
			fmt.Sprintf("expected 2 features, got %d", len(fc.Features)))
		return
	}

	from, err := geo.FromFeature(fc.Features[0])
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "first feature: "+err.Error())
		return
	}
	to, err := geo.FromFeature(fc.Features[1])
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "second feature: "+err.Error())
		return
	}

	res := models.NewResult(from, to)
	if !res.Midpoint.IsFinite() {
		writeError(h.log, w, r, http.StatusUnprocessableEntity, "midpoint is not finite for the given coordinates")
		return
	}

	feature := geo.Feature(res.Midpoint)
	feature.SetProperty("distance_meters", res.DistanceMeters)

	out, err := feature.MarshalJSON()
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to encode midpoint feature", "error", err)
		writeError(h.log, w, r, http.StatusInternalServerError, "failed to encode feature")
		return
	}

	h.metrics.MidpointsComputed.WithLabelValues("api").Inc()

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(out); err != nil {
		h.log.ErrorContext(r.Context(), "write failed", "error", err)
	}
}

// resolve turns one endpoint of the query into a point. Coordinates win over an address.
func (h *MidpointHandler) resolve(ctx context.Context, name, coords, address string) (geo.Point, error) {
	if coords != "" {
		p, err := geo.ParsePoint(coords)
		if err != nil {
			return geo.Point{}, fmt.Errorf("%s: %w", name, err)
		}
		return p, nil
	}

	if address == "" {
		return geo.Point{}, fmt.Errorf("%s: %w", name, ErrMissingEndpoint)
	}
	if h.provider == nil {
		return geo.Point{}, ErrNoProvider
	}

	start := time.Now()
	p, err := h.provider.Geocode(ctx, address)
	h.metrics.GeocoderSeconds.WithLabelValues(h.providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		h.log.WarnContext(ctx, "Failed to geocode address", "endpoint", name, "address", address, "error", err)
		return geo.Point{}, &geocodeError{err: fmt.Errorf("%s: failed to geocode address: %w", name, err)}
	}

	return *p, nil
}

func (h *MidpointHandler) writeResolveError(w http.ResponseWriter, r *http.Request, err error) {
	var gerr *geocodeError

	switch {
	case errors.Is(err, ErrNoProvider):
		writeError(h.log, w, r, http.StatusNotImplemented, err.Error())
	case errors.As(err, &gerr):
		writeError(h.log, w, r, http.StatusBadGateway, err.Error())
	default:
		writeError(h.log, w, r, http.StatusBadRequest, err.Error())
	}
}
