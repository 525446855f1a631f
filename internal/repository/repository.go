package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/pkg/geo"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MaxAttempts is the number of failed computations after which a segment is no longer fetched.
const MaxAttempts = 5

// ErrSegmentNotFound is returned when no segment has the requested ID.
var ErrSegmentNotFound = errors.New("segment not found")

// Database is the subset of pgxpool.Pool used by the repository.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchPendingSegments(ctx context.Context, limit int) ([]models.Segment, error)
	UpdateSegmentMidpoint(ctx context.Context, segmentID int, mid geo.Point) error
	IncrementFailureCount(ctx context.Context, segmentID int, errMsg string) error
	InsertSegment(ctx context.Context, from, to geo.Point) (int, error)
	GetSegment(ctx context.Context, segmentID int) (*models.SegmentRecord, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
