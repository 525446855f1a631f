package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/meridian/pkg/geo"
	"googlemaps.github.io/maps"
)

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// GoogleAPIClient is the part of *maps.Client used by GoogleProvider.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleProvider resolves addresses with the Google Maps Geocoding API.
type GoogleProvider struct {
	api GoogleAPIClient
	log *slog.Logger
}

func NewGoogleProvider(api GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{api: api, log: log}
}

// Geocode returns the location of the first exact match for address.
// When Google only has partial matches, the first of them is used.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*geo.Point, error) {
	results, err := gp.api.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEmptyResponse
	}

	best := results[0]
	for _, res := range results {
		if !res.PartialMatch {
			best = res
			break
		}
	}
	if best.PartialMatch {
		gp.log.WarnContext(ctx, "Google returned only partial matches", "address", address, "match", best.FormattedAddress)
	}

	point := geo.NewPoint(best.Geometry.Location.Lng, best.Geometry.Location.Lat)
	gp.log.DebugContext(ctx, "Google found result", "address", address, "point", point.String())

	return &point, nil
}
