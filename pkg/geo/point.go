// Package geo holds the spherical primitives used across meridian: the longitude/latitude
// point type, the great-circle midpoint and a few conversions around them.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// Common errors for point parsing and GeoJSON conversion.
var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrNotPoint           = errors.New("geometry is not a point")
)

const coordsListLength = 2

// Point is a location on a sphere, in degrees. Longitude always comes first.
type Point struct {
	Longitude float64 `json:"longitude"` // Longitude of the point, conventionally in [-180, 180].
	Latitude  float64 `json:"latitude"`  // Latitude of the point, in [-90, 90].
}

// NewPoint builds a point from an ordered longitude/latitude pair.
func NewPoint(lng, lat float64) Point {
	return Point{Longitude: lng, Latitude: lat}
}

// Coordinates returns the point as [lng, lat].
func (p Point) Coordinates() [2]float64 { return [2]float64{p.Longitude, p.Latitude} }

// Lng returns the longitude in degrees.
func (p Point) Lng() float64 { return p.Longitude }

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 { return p.Latitude }

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.Longitude) && !math.IsInf(p.Longitude, 0) &&
		!math.IsNaN(p.Latitude) && !math.IsInf(p.Latitude, 0)
}

// String formats the point as "lng,lat", the same form ParsePoint accepts.
func (p Point) String() string {
	return strconv.FormatFloat(p.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Latitude, 'f', -1, 64)
}

// ParsePoint reads a "lng,lat" pair. Only the syntax is checked; out-of-range values are kept.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != coordsListLength {
		return Point{}, fmt.Errorf("%w: expected \"lng,lat\", got %q", ErrInvalidCoordinates, s)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: invalid longitude: %s", ErrInvalidCoordinates, parts[0])
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: invalid latitude: %s", ErrInvalidCoordinates, parts[1])
	}

	return NewPoint(lng, lat), nil
}

// Feature wraps the point into a GeoJSON Point feature.
func Feature(p Point) *geojson.Feature {
	return geojson.NewPointFeature([]float64{p.Longitude, p.Latitude})
}

// FromFeature extracts the point from a GeoJSON Point feature.
// Extra coordinate members (altitude) are ignored.
func FromFeature(f *geojson.Feature) (Point, error) {
	if f == nil || f.Geometry == nil {
		return Point{}, fmt.Errorf("%w: feature has no geometry", ErrNotPoint)
	}
	if !f.Geometry.IsPoint() {
		return Point{}, fmt.Errorf("%w: got %s", ErrNotPoint, f.Geometry.Type)
	}
	if len(f.Geometry.Point) < coordsListLength {
		return Point{}, fmt.Errorf("%w: point has %d members", ErrInvalidCoordinates, len(f.Geometry.Point))
	}

	return NewPoint(f.Geometry.Point[0], f.Geometry.Point[1]), nil
}
