// Package engine runs batches of sensor packages through the workout model.
package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sicko7947/fittracker"
	"github.com/sicko7947/fittracker/builder"
)

// Engine turns packages into summaries, one at a time and in order
type Engine struct {
	logger zerolog.Logger
	config fittracker.ProcessConfig
}

// EngineOption configures the engine
type EngineOption func(*Engine)

// WithLogger sets a custom logger for the engine
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConfig sets a custom configuration for the engine
func WithConfig(config fittracker.ProcessConfig) EngineOption {
	return func(e *Engine) {
		e.config = config
	}
}

// WithProcessOptions applies process options on top of the current config
func WithProcessOptions(opts ...fittracker.ProcessOption) EngineOption {
	return func(e *Engine) {
		for _, opt := range opts {
			opt(&e.config)
		}
	}
}

// NewEngine creates an engine with optional configuration.
// If no logger is provided, a console logger on stderr at Info level is used.
// If no config is provided, fittracker.DefaultProcessConfig is used.
func NewEngine(opts ...EngineOption) *Engine {
	defaultLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	eng := &Engine{
		logger: defaultLogger,
		config: fittracker.DefaultProcessConfig,
	}

	for _, opt := range opts {
		opt(eng)
	}

	if !eng.config.Locale.IsValid() {
		eng.config.Locale = fittracker.DefaultLocale
	}

	return eng
}

// Config returns the engine's process configuration
func (e *Engine) Config() fittracker.ProcessConfig {
	return e.config
}

// Summarize builds and summarizes a single package
func (e *Engine) Summarize(pkg fittracker.Package) (*fittracker.Result, error) {
	return e.summarize(e.logger, 0, pkg)
}

func (e *Engine) summarize(logger zerolog.Logger, index int, pkg fittracker.Package) (*fittracker.Result, error) {
	w, err := builder.Build(pkg, builder.FromConfig(e.config)...)
	if err != nil {
		te := fittracker.ToTrackerError(err)
		recordFailure(te)
		fittracker.LogPackageRejected(logger, pkg.Type, te)
		return nil, te
	}
	fittracker.LogWorkoutBuilt(logger, pkg.Type, w.Kind())

	info := fittracker.ShowTrainingInfo(w)
	fittracker.LogSummaryComputed(logger, info)
	recordSummary(info)

	return &fittracker.Result{
		Index:   index,
		Tag:     pkg.Type,
		Info:    info,
		Message: info.MessageIn(e.config.Locale),
	}, nil
}

// Run processes packages in order. Unless ContinueOnError is set, the first
// rejected package stops the run: the report keeps the results produced so
// far and the error is returned. Cancelling ctx stops the run between
// packages.
func (e *Engine) Run(ctx context.Context, packages []fittracker.Package) (*fittracker.Report, error) {
	runID := uuid.New().String()
	runLogger := fittracker.RunLogger(e.logger, runID)

	report := &fittracker.Report{
		RunID:     runID,
		Status:    fittracker.RunStatusRunning,
		StartedAt: time.Now(),
		Results:   make([]fittracker.Result, 0, len(packages)),
	}

	fittracker.LogRunStarted(e.logger, runID, len(packages))

	for i, pkg := range packages {
		select {
		case <-ctx.Done():
			e.finish(report, fittracker.RunStatusCancelled)
			fittracker.LogRunCancelled(e.logger, runID)
			return report, fmt.Errorf("run %s cancelled: %w", runID, ctx.Err())
		default:
		}

		pkgLogger := fittracker.PackageLogger(runLogger, i)

		result, err := e.summarize(pkgLogger, i, pkg)
		if err != nil {
			report.Failures = append(report.Failures, fittracker.Failure{
				Index: i,
				Tag:   pkg.Type,
				Error: fittracker.ToTrackerError(err),
			})

			if e.config.ContinueOnError {
				continue
			}

			e.finish(report, fittracker.RunStatusFailed)
			fittracker.LogRunFailed(e.logger, runID, err)
			return report, fmt.Errorf("package %d: %w", i, err)
		}

		report.Results = append(report.Results, *result)
	}

	e.finish(report, fittracker.RunStatusCompleted)
	fittracker.LogRunCompleted(e.logger, runID, len(report.Results), len(report.Failures),
		report.CompletedAt.Sub(report.StartedAt))

	return report, nil
}

func (e *Engine) finish(report *fittracker.Report, status fittracker.RunStatus) {
	report.Status = status
	report.CompletedAt = fittracker.ToPtr(time.Now())
	recordRun(status)
}
