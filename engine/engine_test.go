package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/sicko7947/fittracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedSampleMessages = []string{
	"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
	"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
	"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
}

func newTestEngine(opts ...EngineOption) *Engine {
	return NewEngine(append([]EngineOption{WithLogger(zerolog.Nop())}, opts...)...)
}

func TestNewEngine_Defaults(t *testing.T) {
	eng := NewEngine()
	assert.Equal(t, fittracker.DefaultProcessConfig, eng.Config())
}

func TestNewEngine_InvalidLocaleFallsBack(t *testing.T) {
	eng := newTestEngine(WithProcessOptions(fittracker.WithLocale("xx")))
	assert.Equal(t, fittracker.DefaultLocale, eng.Config().Locale)
}

func TestEngine_RunSamplePackages(t *testing.T) {
	eng := newTestEngine()

	report, err := eng.Run(context.Background(), fittracker.SamplePackages())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, fittracker.RunStatusCompleted, report.Status)
	require.NotNil(t, report.CompletedAt)
	assert.Empty(t, report.Failures)
	assert.Equal(t, expectedSampleMessages, report.Messages())

	require.Len(t, report.Results, 3)
	assert.Equal(t, 0, report.Results[0].Index)
	assert.Equal(t, "SWM", report.Results[0].Tag)
	assert.InDelta(t, 336.0, report.Results[0].Info.Calories, 1e-9)
	assert.InDelta(t, 699.75, report.Results[1].Info.Calories, 1e-9)
	assert.InDelta(t, 157.5, report.Results[2].Info.Calories, 1e-9)
}

func TestEngine_RunIDsAreUnique(t *testing.T) {
	eng := newTestEngine()

	r1, err := eng.Run(context.Background(), nil)
	require.NoError(t, err)
	r2, err := eng.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, r1.RunID, r2.RunID)
	assert.Empty(t, r1.Results)
}

func TestEngine_UnknownTagStopsRun(t *testing.T) {
	eng := newTestEngine()
	packages := []fittracker.Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "XXX", Data: []float64{1, 1, 1}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	report, err := eng.Run(context.Background(), packages)
	require.Error(t, err)
	assert.True(t, fittracker.IsUnknownTagError(err))
	assert.Contains(t, err.Error(), "неизвестный тип тренировки")

	assert.Equal(t, fittracker.RunStatusFailed, report.Status)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "RUN", report.Results[0].Tag)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].Index)
	assert.Equal(t, fittracker.ErrCodeUnknownTag, report.Failures[0].Error.Code)
}

func TestEngine_ContinueOnError(t *testing.T) {
	eng := newTestEngine(WithProcessOptions(fittracker.WithContinueOnError(true)))
	packages := []fittracker.Package{
		{Type: "XXX", Data: []float64{1, 1, 1}},
		{Type: "RUN", Data: []float64{15000, 1}},
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	}

	report, err := eng.Run(context.Background(), packages)
	require.NoError(t, err)

	assert.Equal(t, fittracker.RunStatusCompleted, report.Status)
	require.Len(t, report.Results, 1)
	assert.Equal(t, 2, report.Results[0].Index)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, fittracker.ErrCodeUnknownTag, report.Failures[0].Error.Code)
	assert.Equal(t, fittracker.ErrCodeInvalidData, report.Failures[1].Error.Code)
}

func TestEngine_StrictValidation(t *testing.T) {
	eng := newTestEngine(WithConfig(fittracker.NewProcessConfig(fittracker.WithStrictValidation(true))))

	_, err := eng.Run(context.Background(), []fittracker.Package{
		{Type: "WLK", Data: []float64{9000, 1, 75, 0}},
	})
	require.Error(t, err)
	assert.True(t, fittracker.IsInvalidDataError(err))
}

func TestEngine_Cancelled(t *testing.T) {
	eng := newTestEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := eng.Run(ctx, fittracker.SamplePackages())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, fittracker.RunStatusCancelled, report.Status)
	assert.Empty(t, report.Results)
}

func TestEngine_Locale(t *testing.T) {
	eng := newTestEngine(WithProcessOptions(fittracker.WithLocale(fittracker.LocaleEN)))

	result, err := eng.Summarize(fittracker.Package{Type: "RUN", Data: []float64{15000, 1, 75}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Message, "Workout type: Running;"))

	_, err = eng.Summarize(fittracker.Package{Type: "XXX"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such workout kind")
}

func TestEngine_LogsEvents(t *testing.T) {
	var buf bytes.Buffer
	eng := NewEngine(WithLogger(zerolog.New(&buf)))

	_, err := eng.Run(context.Background(), []fittracker.Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
	})
	require.NoError(t, err)

	var events []string
	var runIDs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		events = append(events, entry["event"].(string))
		runIDs = append(runIDs, entry["run_id"].(string))
	}

	assert.Equal(t, []string{
		fittracker.EventRunStarted,
		fittracker.EventWorkoutBuilt,
		fittracker.EventSummaryComputed,
		fittracker.EventRunCompleted,
	}, events)
	for _, id := range runIDs {
		assert.Equal(t, runIDs[0], id)
	}
}

func TestEngine_Metrics(t *testing.T) {
	eng := newTestEngine(WithProcessOptions(fittracker.WithContinueOnError(true)))

	swimBefore := testutil.ToFloat64(summariesCounter.WithLabelValues("Swimming"))
	unknownBefore := testutil.ToFloat64(failuresCounter.WithLabelValues(fittracker.ErrCodeUnknownTag))
	completedBefore := testutil.ToFloat64(runsCounter.WithLabelValues("COMPLETED"))

	_, err := eng.Run(context.Background(), []fittracker.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "XXX"},
	})
	require.NoError(t, err)

	assert.Equal(t, swimBefore+1, testutil.ToFloat64(summariesCounter.WithLabelValues("Swimming")))
	assert.Equal(t, unknownBefore+1, testutil.ToFloat64(failuresCounter.WithLabelValues(fittracker.ErrCodeUnknownTag)))
	assert.Equal(t, completedBefore+1, testutil.ToFloat64(runsCounter.WithLabelValues("COMPLETED")))
}
