package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sicko7947/fittracker"
)

var (
	summariesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "engine",
		Name:      "summaries_total",
		Help:      "Number of workout summaries computed, by workout kind.",
	}, []string{"kind"})

	failuresCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "engine",
		Name:      "package_failures_total",
		Help:      "Number of packages rejected, by error code.",
	}, []string{"code"})

	runsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "engine",
		Name:      "runs_total",
		Help:      "Number of batch runs, by final status.",
	}, []string{"status"})

	caloriesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fittracker",
		Subsystem: "engine",
		Name:      "calories_kcal",
		Help:      "Distribution of calories burned per workout.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600},
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(summariesCounter, failuresCounter, runsCounter, caloriesHistogram)
}

func recordSummary(info fittracker.InfoMessage) {
	kind := info.TrainingType.String()
	summariesCounter.WithLabelValues(kind).Inc()
	caloriesHistogram.WithLabelValues(kind).Observe(info.Calories)
}

func recordFailure(err *fittracker.TrackerError) {
	failuresCounter.WithLabelValues(err.Code).Inc()
}

func recordRun(status fittracker.RunStatus) {
	runsCounter.WithLabelValues(status.String()).Inc()
}
