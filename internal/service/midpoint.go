package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/repository"
	"github.com/UnknownOlympus/meridian/pkg/geo"
)

// ErrNonFiniteMidpoint marks a segment whose endpoints do not produce a finite midpoint.
var ErrNonFiniteMidpoint = errors.New("midpoint is not finite")

// MidpointService fills in the midpoints of stored segments.
// It polls the repository on a fixed interval and spreads every batch over a pool of workers.
type MidpointService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Repository with pending segments
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval between polls for pending segments
	batchSize    int                  // Maximum number of segments fetched per poll
}

// NewMidpointService creates a new instance of MidpointService.
func NewMidpointService(
	log *slog.Logger,
	repo repository.Interface,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
	batchSize int,
) *MidpointService {
	return &MidpointService{
		log:          log,
		repo:         repo,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
		batchSize:    batchSize,
	}
}

// Run polls for pending segments until ctx is cancelled.
func (ms *MidpointService) Run(ctx context.Context) {
	ticker := time.NewTicker(ms.pollInterval)
	defer ticker.Stop()

	ms.log.InfoContext(ctx, "Midpoint service started...")

	for {
		select {
		case <-ctx.Done():
			ms.log.InfoContext(ctx, "Midpoint service stopped.")
			return
		case <-ticker.C:
			ms.log.DebugContext(ctx, "Polling for pending segments...")
			ms.processBatch(ctx)
		}
	}
}

// processBatch fetches one batch of pending segments and waits until the worker pool has handled all of them.
func (ms *MidpointService) processBatch(ctx context.Context) {
	segments, err := ms.repo.FetchPendingSegments(ctx, ms.batchSize)
	if err != nil {
		ms.log.ErrorContext(ctx, "Failed to fetch segments", "error", err)
		return
	}
	if len(segments) == 0 {
		ms.log.DebugContext(ctx, "No segments to process.")
		return
	}

	ms.log.InfoContext(ctx, "Found segments to process. Starting worker pool.",
		"jobs", len(segments), "num_workers", ms.numWorkers)

	jobs := make(chan models.Segment, len(segments))
	var wgr sync.WaitGroup

	for i := 1; i <= ms.numWorkers; i++ {
		wgr.Add(1)
		go ms.worker(ctx, i, &wgr, jobs)
	}

	for _, seg := range segments {
		jobs <- seg
	}
	close(jobs)

	wgr.Wait()
	ms.log.InfoContext(ctx, "Processing batch finished")
}

func (ms *MidpointService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Segment) {
	defer wg.Done()
	for seg := range jobs {
		ms.metrics.ActiveWorkers.Inc()
		ms.process(ctx, idx, seg)
		ms.metrics.ActiveWorkers.Dec()
	}
}

func (ms *MidpointService) process(ctx context.Context, idx int, seg models.Segment) {
	ms.log.DebugContext(ctx, "Processing segment", "worker", idx, "segment", seg.ID)

	mid, err := computeMidpoint(seg)
	if err != nil {
		ms.log.WarnContext(ctx, "Failed to compute midpoint", "worker", idx, "segment", seg.ID, "error", err)
		ms.metrics.SegmentsProcessed.WithLabelValues("failure").Inc()

		if err = ms.repo.IncrementFailureCount(ctx, seg.ID, err.Error()); err != nil {
			ms.log.ErrorContext(ctx, "Could not update failure count for segment",
				"worker", idx, "segment", seg.ID, "error", err)
		}
		return
	}

	ms.metrics.MidpointsComputed.WithLabelValues("worker").Inc()

	if err = ms.repo.UpdateSegmentMidpoint(ctx, seg.ID, mid); err != nil {
		ms.metrics.SegmentsProcessed.WithLabelValues("failure").Inc()
		ms.log.ErrorContext(ctx, "Failed to store midpoint for segment",
			"worker", idx, "segment", seg.ID, "error", err)
		return
	}

	ms.metrics.SegmentsProcessed.WithLabelValues("success").Inc()
	ms.log.DebugContext(ctx, "Worker stored the midpoint", "worker", idx, "segment", seg.ID, "midpoint", mid.String())
}

// computeMidpoint refuses to store NaN or infinite coordinates, which Postgres would accept silently.
func computeMidpoint(seg models.Segment) (geo.Point, error) {
	mid := geo.Midpoint(seg.From, seg.To)
	if !mid.IsFinite() {
		return geo.Point{}, fmt.Errorf("%w: from %s to %s", ErrNonFiniteMidpoint, seg.From, seg.To)
	}

	return mid, nil
}
