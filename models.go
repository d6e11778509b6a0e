package fittracker

import "time"

// Kind identifies a concrete workout variant
type Kind string

const (
	KindRunning       Kind = "Running"
	KindSportsWalking Kind = "SportsWalking"
	KindSwimming      Kind = "Swimming"
)

// IsValid returns true if the kind is one of the supported variants
func (k Kind) IsValid() bool {
	return k == KindRunning || k == KindSportsWalking || k == KindSwimming
}

// String returns the display name used in summary messages
func (k Kind) String() string {
	return string(k)
}

// Workout tags sent by the sensor block
const (
	TagSwimming = "SWM"
	TagRunning  = "RUN"
	TagWalking  = "WLK"
)

// Package is a single reading from the sensor block: a workout tag and its
// positional data
type Package struct {
	Type string    `json:"type" yaml:"type"`
	Data []float64 `json:"data" yaml:"data"`
}

// InfoMessage holds the computed statistics of one workout
type InfoMessage struct {
	TrainingType Kind    `json:"trainingType"`
	Duration     float64 `json:"duration"` // hours
	Distance     float64 `json:"distance"` // km
	Speed        float64 `json:"speed"`    // km/h
	Calories     float64 `json:"calories"` // kcal
}

// SamplePackages returns the packages the tracker ships with for demo runs
func SamplePackages() []Package {
	return []Package{
		{Type: TagSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Type: TagRunning, Data: []float64{15000, 1, 75}},
		{Type: TagWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

// RunStatus represents the outcome of processing a batch of packages
type RunStatus string

const (
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusCompleted RunStatus = "COMPLETED"
	RunStatusFailed    RunStatus = "FAILED"
	RunStatusCancelled RunStatus = "CANCELLED"
)

// String returns the string representation
func (s RunStatus) String() string {
	return string(s)
}

// Result is the summary of one successfully processed package
type Result struct {
	Index   int         `json:"index"`
	Tag     string      `json:"tag"`
	Info    InfoMessage `json:"info"`
	Message string      `json:"message"`
}

// Failure records a package that could not be summarized
type Failure struct {
	Index int           `json:"index"`
	Tag   string        `json:"tag"`
	Error *TrackerError `json:"error"`
}

// Report is the outcome of one batch run
type Report struct {
	RunID       string     `json:"runId"`
	Status      RunStatus  `json:"status"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Results     []Result   `json:"results"`
	Failures    []Failure  `json:"failures,omitempty"`
}

// Messages returns the rendered summary lines in package order
func (r *Report) Messages() []string {
	lines := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		lines = append(lines, res.Message)
	}
	return lines
}
