package geocoding

import (
	"context"

	"github.com/UnknownOlympus/meridian/pkg/geo"
)

// Provider resolves a free-form address into a point on the globe.
type Provider interface {
	Geocode(ctx context.Context, address string) (*geo.Point, error)
}
