package models

import "github.com/UnknownOlympus/meridian/pkg/geo"

// Segment is a stored pair of points whose midpoint has not been computed yet.
type Segment struct {
	ID   int       // ID is the unique identifier for the segment.
	From geo.Point // From is the first endpoint.
	To   geo.Point // To is the second endpoint.
}

// SegmentRecord is the stored state of a segment as reported back to clients.
type SegmentRecord struct {
	ID        int        `json:"id"`
	From      geo.Point  `json:"from"`
	To        geo.Point  `json:"to"`
	Midpoint  *geo.Point `json:"midpoint,omitempty"` // nil until the worker has processed the segment
	Attempts  int        `json:"attempts"`
	LastError string     `json:"last_error,omitempty"`
}
