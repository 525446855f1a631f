package models

import "github.com/UnknownOlympus/meridian/pkg/geo"

// Result describes a computed midpoint together with the segment it belongs to.
type Result struct {
	From           geo.Point `json:"from"`
	To             geo.Point `json:"to"`
	Midpoint       geo.Point `json:"midpoint"`
	DistanceMeters float64   `json:"distance_meters"` // great-circle length of the whole segment
}

// NewResult computes the midpoint of from and to and the segment length.
func NewResult(from, to geo.Point) Result {
	return Result{
		From:           from,
		To:             to,
		Midpoint:       geo.Midpoint(from, to),
		DistanceMeters: geo.Distance(from, to),
	}
}
