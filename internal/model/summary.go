package model

import "time"

// RunSummary captures metrics from a single analysis run.
type RunSummary struct {
	SourcePath   string
	SourceSHA256 string
	RunID        string

	RowsRead       int64
	RowsNormalized int64
	RowsRejected   int64

	DurationRead      time.Duration
	DurationNormalize time.Duration
	DurationAggregate time.Duration
	DurationTotal     time.Duration
}
