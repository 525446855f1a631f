package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/UnknownOlympus/meridian/pkg/geo"
	"golang.org/x/time/rate"
)

// VisicomBaseURL -- Visicom API base URL.
const VisicomBaseURL = "https://api.visicom.ua/data-api/5.0/uk/geocode.json"

// VisicomProvider implements geocoding using Visicom API.
type VisicomProvider struct {
	client  HTTPClient
	baseURL string
	apiKey  string
	log     *slog.Logger
	limiter *rate.Limiter
}

// Common errors for Visicom provider.
var (
	ErrVisicomEmptyResponse = errors.New("visicom API returned empty response")
	ErrVisicomEmptyAddress  = errors.New("visicom provider got empty address")
	ErrVisicomInvalidCoords = errors.New("visicom API returned invalid coordinates")
	ErrVisicomUnauthorized  = errors.New("visicom API unauthorized (invalid API key)")
)

type visicomResponse struct {
	Centroid struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geo_centroid"`
}

// NewVisicomProvider creates a new Visicom geocoding provider limited to rateLimit requests per second.
func NewVisicomProvider(apiKey string, rateLimit int, log *slog.Logger) *VisicomProvider {
	return NewVisicomProviderWithClient(
		&http.Client{Timeout: requestTimeout},
		apiKey,
		rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		log,
	)
}

// NewVisicomProviderWithClient allows injecting custom HTTP client and limiter.
func NewVisicomProviderWithClient(
	client HTTPClient,
	apiKey string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *VisicomProvider {
	return &VisicomProvider{
		client:  client,
		baseURL: VisicomBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: limiter,
	}
}

// Geocode converts address into a point using Visicom API.
func (vp *VisicomProvider) Geocode(ctx context.Context, address string) (*geo.Point, error) {
	if address == "" {
		return nil, ErrVisicomEmptyAddress
	}

	// Empty addresses are rejected above so they do not consume a token.
	if err := vp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	query := url.Values{}
	query.Set("text", address)
	query.Set("limit", "1")
	query.Set("key", vp.apiKey)

	var result visicomResponse
	err := getJSON(ctx, vp.client, vp.log, "visicom", vp.baseURL, query, &result)

	var statusErr *statusError
	if errors.As(err, &statusErr) &&
		(statusErr.code == http.StatusUnauthorized || statusErr.code == http.StatusForbidden) {
		return nil, ErrVisicomUnauthorized
	}
	if err != nil {
		return nil, err
	}

	coords := result.Centroid.Coordinates
	if len(coords) == 0 {
		return nil, ErrVisicomEmptyResponse
	}
	if len(coords) != 2 {
		return nil, ErrVisicomInvalidCoords
	}

	point := geo.NewPoint(coords[0], coords[1])
	vp.log.InfoContext(ctx, "Visicom found result", "address", address, "point", point.String())

	return &point, nil
}
