package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/meridian/pkg/geo"
)

// NominatimBaseURL is the public OpenStreetMap search endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// NominatimProvider implements the Provider interface using OpenStreetMap's Nominatim API.
// The public instance allows about one request per second.
type NominatimProvider struct {
	client  HTTPClient
	baseURL string
	log     *slog.Logger
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider creates a Nominatim provider talking to the public endpoint.
func NewNominatimProvider(log *slog.Logger) *NominatimProvider {
	return NewNominatimProviderWithClient(&http.Client{Timeout: requestTimeout}, log)
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom HTTP client.
func NewNominatimProviderWithClient(client HTTPClient, log *slog.Logger) *NominatimProvider {
	return &NominatimProvider{client: client, baseURL: NominatimBaseURL, log: log}
}

// Geocode looks the address up and, when nothing matches, retries with trailing
// comma-separated components dropped one by one ("city, street, 3" -> "city, street" -> "city").
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (*geo.Point, error) {
	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", address)

	candidates := addressFallbacks(address)
	for level, candidate := range candidates {
		point, err := np.search(ctx, candidate)
		if err == nil {
			if level > 0 {
				np.log.InfoContext(ctx, "Geocoded using fallback address",
					"original", address, "fallback", candidate, "fallback_level", level)
			}
			return point, nil
		}
		if !errors.Is(err, ErrNominatimEmptyResponse) {
			return nil, err
		}
	}

	np.log.WarnContext(ctx, "All address fallbacks exhausted", "address", address, "variations_tried", len(candidates))
	return nil, ErrNominatimEmptyResponse
}

func (np *NominatimProvider) search(ctx context.Context, address string) (*geo.Point, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	var results []nominatimResult
	if err := getJSON(ctx, np.client, np.log, "nominatim", np.baseURL, query, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, results[0].Lon)
	}

	point := geo.NewPoint(lng, lat)
	return &point, nil
}

// addressFallbacks returns the address followed by shorter prefixes of its comma-separated parts.
func addressFallbacks(address string) []string {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	variations := make([]string, 0, len(parts))
	for n := len(parts); n > 0; n-- {
		candidate := strings.Join(parts[:n], ", ")
		if candidate == "" {
			continue
		}
		variations = append(variations, candidate)
	}
	if len(variations) == 0 {
		return []string{address}
	}

	return variations
}
