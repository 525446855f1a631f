package geo

import (
	"fmt"
	"math"

	gogeo "github.com/paulmach/go.geo"
	geojson "github.com/paulmach/go.geojson"
)

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Midpoint returns the point halfway along the great circle between a and b.
//
// Inputs are not validated: out-of-range values go through the formula as-is and
// NaN or infinite coordinates yield NaN. For antipodal points any great circle is a
// shortest path, so the result is valid but arbitrary.
// The longitude is normalised with (λ+3π) mod 2π − π, which keeps the antimeridian
// case (179°, -179°) at ±180 instead of 0.
//
// https://www.movable-type.co.uk/scripts/latlong.html
func Midpoint(a, b Point) Point {
	lat1 := a.Latitude * degToRad
	lng1 := a.Longitude * degToRad
	lat2 := b.Latitude * degToRad
	lng2 := b.Longitude * degToRad

	deltaLng := lng2 - lng1
	bx := math.Cos(lat2) * math.Cos(deltaLng)
	by := math.Cos(lat2) * math.Sin(deltaLng)

	cosLat1Bx := math.Cos(lat1) + bx
	dlat := math.Atan2(math.Sin(lat1)+math.Sin(lat2), math.Sqrt(cosLat1Bx*cosLat1Bx+by*by))
	dlng := lng1 + math.Atan2(by, cosLat1Bx)

	dlng = math.Mod(dlng+3*math.Pi, 2*math.Pi) - math.Pi

	return NewPoint(dlng*radToDeg, dlat*radToDeg)
}

// MidpointFeature is Midpoint for GeoJSON Point features.
func MidpointFeature(a, b *geojson.Feature) (*geojson.Feature, error) {
	from, err := FromFeature(a)
	if err != nil {
		return nil, fmt.Errorf("first feature: %w", err)
	}
	to, err := FromFeature(b)
	if err != nil {
		return nil, fmt.Errorf("second feature: %w", err)
	}

	return Feature(Midpoint(from, to)), nil
}

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	return gogeo.NewPoint(a.Longitude, a.Latitude).GeoDistanceFrom(gogeo.NewPoint(b.Longitude, b.Latitude), true)
}
