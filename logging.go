package fittracker

import (
	"time"

	"github.com/rs/zerolog"
)

// Log event names
const (
	// Run-level events
	EventRunStarted   = "run_started"
	EventRunCompleted = "run_completed"
	EventRunFailed    = "run_failed"
	EventRunCancelled = "run_cancelled"

	// Package-level events
	EventWorkoutBuilt    = "workout_built"
	EventSummaryComputed = "summary_computed"
	EventPackageRejected = "package_rejected"
)

// LogRunStarted logs when a batch of packages starts processing
func LogRunStarted(logger zerolog.Logger, runID string, packages int) {
	logger.Info().
		Str("event", EventRunStarted).
		Str("run_id", runID).
		Int("packages", packages).
		Msg("Run started")
}

// LogRunCompleted logs successful batch completion
func LogRunCompleted(logger zerolog.Logger, runID string, summaries, failures int, duration time.Duration) {
	logger.Info().
		Str("event", EventRunCompleted).
		Str("run_id", runID).
		Int("summaries", summaries).
		Int("failures", failures).
		Dur("duration", duration).
		Msg("Run completed")
}

// LogRunFailed logs a batch aborted by a package error
func LogRunFailed(logger zerolog.Logger, runID string, err error) {
	logger.Error().
		Str("event", EventRunFailed).
		Str("run_id", runID).
		Err(err).
		Msg("Run failed")
}

// LogRunCancelled logs a batch stopped by its context
func LogRunCancelled(logger zerolog.Logger, runID string) {
	logger.Warn().
		Str("event", EventRunCancelled).
		Str("run_id", runID).
		Msg("Run cancelled")
}

// LogWorkoutBuilt logs a package successfully dispatched to a variant
func LogWorkoutBuilt(logger zerolog.Logger, tag string, kind Kind) {
	logger.Debug().
		Str("event", EventWorkoutBuilt).
		Str("tag", tag).
		Str("kind", kind.String()).
		Msg("Workout built")
}

// LogSummaryComputed logs the computed statistics of a workout
func LogSummaryComputed(logger zerolog.Logger, info InfoMessage) {
	logger.Debug().
		Str("event", EventSummaryComputed).
		Str("kind", info.TrainingType.String()).
		Float64("duration_h", info.Duration).
		Float64("distance_km", info.Distance).
		Float64("speed_kmh", info.Speed).
		Float64("calories_kcal", info.Calories).
		Msg("Summary computed")
}

// LogPackageRejected logs a package that could not be turned into a workout
func LogPackageRejected(logger zerolog.Logger, tag string, err error) {
	logger.Warn().
		Str("event", EventPackageRejected).
		Str("tag", tag).
		Err(err).
		Msg("Package rejected")
}

// RunLogger creates a logger enriched with run context
func RunLogger(baseLogger zerolog.Logger, runID string) zerolog.Logger {
	return baseLogger.With().
		Str("run_id", runID).
		Logger()
}

// PackageLogger creates a logger enriched with the package position in its run
func PackageLogger(runLogger zerolog.Logger, index int) zerolog.Logger {
	return runLogger.With().
		Int("index", index).
		Logger()
}
