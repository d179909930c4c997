package model

import "time"

// ExplorerMetrics is a point-in-time snapshot of the in-memory
// submission counters. Counters reset on process restart.
type ExplorerMetrics struct {
	Submissions    int64     `json:"submissions"`
	Successes      int64     `json:"successes"`
	Failures       int64     `json:"failures"`
	Warnings       int64     `json:"warnings"`
	RegionFetches  int64     `json:"region_fetches"`
	AvgDurationMS  float64   `json:"avg_duration_ms"`
	LastSubmission time.Time `json:"last_submission,omitempty"`
}
