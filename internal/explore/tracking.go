package explore

import (
	"sync"
	"time"

	"go-stat-explorer/internal/model"
)

// Tracker keeps in-memory counters over the lifetime of the process.
// It is written once per completed submission and read by the metrics
// endpoint.
type Tracker struct {
	mu             sync.Mutex
	submissions    int64
	successes      int64
	failures       int64
	warnings       int64
	regionFetches  int64
	totalDuration  time.Duration
	lastSubmission time.Time
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordSubmission accounts one completed submission.
func (t *Tracker) RecordSubmission(state model.ExploredData, regions int, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.submissions++
	t.regionFetches += int64(regions)
	t.totalDuration += elapsed
	t.lastSubmission = time.Now().UTC()

	switch state.State {
	case model.StateSuccess:
		t.successes++
		t.warnings += int64(len(state.Warnings))
	case model.StateFailure:
		t.failures++
	}
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() model.ExplorerMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()

	avg := 0.0
	if t.submissions > 0 {
		avg = float64(t.totalDuration.Milliseconds()) / float64(t.submissions)
	}

	return model.ExplorerMetrics{
		Submissions:    t.submissions,
		Successes:      t.successes,
		Failures:       t.failures,
		Warnings:       t.warnings,
		RegionFetches:  t.regionFetches,
		AvgDurationMS:  avg,
		LastSubmission: t.lastSubmission,
	}
}
