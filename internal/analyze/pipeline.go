package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/config"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/fileread"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/normalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full analysis pipeline: read → normalize → aggregate.
// The pipeline is synchronous and runs to completion; each run produces a
// fresh Report and shares no state with earlier runs. Bad rows are filtered
// during normalization — only whole-file failures come back as errors.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config, asOf time.Time) (*model.Report, *model.RunSummary, error) {
	totalStart := time.Now()
	runID := uuid.New().String()
	log = log.With().Str("run_id", runID).Logger()

	// Phase 1: read
	log.Info().Str("file", cfg.FilePath).Time("as_of", asOf).Msg("reading export")
	readStart := time.Now()

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}
	headers, raw, err := fileread.ReadRows(cfg.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}
	if err := fileread.ValidateColumns(headers, cfg.Columns); err != nil {
		return nil, nil, &PipelineError{Phase: "validate", Err: err}
	}
	readDur := time.Since(readStart)
	log.Info().
		Int("rows", len(raw)).
		Str("sha256", sha).
		Dur("duration", readDur).
		Msg("read complete")

	if err := ctx.Err(); err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}

	// Phase 2: normalize
	normStart := time.Now()
	sessions := make([]model.Session, 0, len(raw))
	for _, row := range raw {
		s, ok := normalize.ToSession(row, cfg.Columns)
		if !ok {
			continue
		}
		sessions = append(sessions, s)
	}
	normDur := time.Since(normStart)
	log.Info().
		Int("sessions", len(sessions)).
		Int("rejected", len(raw)-len(sessions)).
		Dur("duration", normDur).
		Msg("normalize complete")

	// Phase 3: aggregate
	aggStart := time.Now()
	profiles := BuildProfiles(sessions)
	report := Synthesize(sessions, profiles, asOf, cfg.InactiveAfterMonths)
	aggDur := time.Since(aggStart)

	summary := &model.RunSummary{
		SourcePath:        cfg.FilePath,
		SourceSHA256:      sha,
		RunID:             runID,
		RowsRead:          int64(len(raw)),
		RowsNormalized:    int64(len(sessions)),
		RowsRejected:      int64(len(raw) - len(sessions)),
		DurationRead:      readDur,
		DurationNormalize: normDur,
		DurationAggregate: aggDur,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Int("patients", report.TotalPatients).
		Int("inactive", len(report.InactivePatients)).
		Float64("retention_pct", report.RetentionRate).
		Dur("duration", aggDur).
		Msg("aggregation complete")

	return report, summary, nil
}
