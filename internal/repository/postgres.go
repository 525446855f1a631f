package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/pkg/geo"
	"github.com/jackc/pgx/v5"
)

// FetchPendingSegments retrieves segments whose midpoint has not been computed yet.
// Segments that failed MaxAttempts times are skipped. The oldest segments come first
// and at most limit rows are returned.
func (r *Repository) FetchPendingSegments(ctx context.Context, limit int) ([]models.Segment, error) {
	var segments []models.Segment
	query := `
		SELECT segment_id, from_lng, from_lat, to_lng, to_lat
		FROM public.segments
		WHERE
			mid_lat IS NULL
			AND attempts < $1
		ORDER BY created_at ASC
		LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, MaxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending segments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seg models.Segment
		if errScan := rows.Scan(
			&seg.ID, &seg.From.Longitude, &seg.From.Latitude, &seg.To.Longitude, &seg.To.Latitude,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan pending segment: %w", errScan)
		}
		r.log.DebugContext(ctx, "A pending segment has been received.",
			"ID", seg.ID, "from", seg.From.String(), "to", seg.To.String())
		segments = append(segments, seg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return segments, nil
}

// UpdateSegmentMidpoint stores the computed midpoint of a segment and clears its last error.
func (r *Repository) UpdateSegmentMidpoint(ctx context.Context, segmentID int, mid geo.Point) error {
	query := `
		UPDATE public.segments
		SET
			mid_lng = $1,
			mid_lat = $2,
			last_error = NULL
		WHERE
			segment_id = $3;
	`

	_, err := r.db.Exec(ctx, query, mid.Longitude, mid.Latitude, segmentID)
	if err != nil {
		return fmt.Errorf("failed to update segment midpoint: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the attempt count of a segment and records the error message.
func (r *Repository) IncrementFailureCount(ctx context.Context, segmentID int, errMsg string) error {
	query := `
		UPDATE public.segments
		SET
			attempts = attempts + 1,
			last_error = $1
		WHERE segment_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, segmentID)
	if err != nil {
		return fmt.Errorf("failed to update segment error and number of attempts: %w", err)
	}

	return nil
}

// InsertSegment stores a new segment for the worker and returns its ID.
func (r *Repository) InsertSegment(ctx context.Context, from, to geo.Point) (int, error) {
	query := `
		INSERT INTO public.segments (from_lng, from_lat, to_lng, to_lat)
		VALUES ($1, $2, $3, $4)
		RETURNING segment_id;
	`

	var id int
	if err := r.db.QueryRow(ctx, query, from.Longitude, from.Latitude, to.Longitude, to.Latitude).
		Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert segment: %w", err)
	}

	r.log.DebugContext(ctx, "Segment stored", "ID", id)

	return id, nil
}

// GetSegment returns the stored state of a segment, or ErrSegmentNotFound.
func (r *Repository) GetSegment(ctx context.Context, segmentID int) (*models.SegmentRecord, error) {
	query := `
		SELECT
			segment_id, from_lng, from_lat, to_lng, to_lat,
			mid_lat IS NOT NULL, COALESCE(mid_lng, 0), COALESCE(mid_lat, 0),
			attempts, COALESCE(last_error, '')
		FROM public.segments
		WHERE segment_id = $1;
	`

	var (
		rec    models.SegmentRecord
		done   bool
		midPnt geo.Point
	)
	err := r.db.QueryRow(ctx, query, segmentID).Scan(
		&rec.ID, &rec.From.Longitude, &rec.From.Latitude, &rec.To.Longitude, &rec.To.Latitude,
		&done, &midPnt.Longitude, &midPnt.Latitude, &rec.Attempts, &rec.LastError,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSegmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}

	if done {
		rec.Midpoint = &midPnt
	}

	return &rec, nil
}
