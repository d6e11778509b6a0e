// Package fittracker computes distance, speed and calorie statistics for
// running, race walking and swimming workouts.
package fittracker

// Conversion factors and step lengths
const (
	MInKm     = 1000
	MinInHour = 60

	LenStep         = 0.65
	SwimmingLenStep = 1.38
)

// Calorie coefficients per variant
const (
	runningCalorieSpeedMultiplier = 18
	runningCalorieSpeedShift      = 20

	walkingCalorieWeightMultiplier = 0.035
	walkingCalorieSpeedMultiplier  = 0.029

	swimmingCalorieSpeedShift       = 1.1
	swimmingCalorieWeightMultiplier = 2
)

// Workout is the behavior shared by all concrete workout variants
type Workout interface {
	Kind() Kind

	// Duration returns the workout duration in hours
	Duration() float64

	// Distance returns the covered distance in km
	Distance() float64

	// MeanSpeed returns the average speed in km/h
	MeanSpeed() float64

	// SpentCalories returns the burned energy in kcal
	SpentCalories() float64
}

// Training holds the raw sensor readings common to every workout.
// It carries the default distance and speed formulas but has no calorie
// formula of its own, so it does not satisfy Workout.
type Training struct {
	Action   int
	Hours    float64
	WeightKg float64
}

// Duration returns the workout duration in hours
func (t Training) Duration() float64 {
	return t.Hours
}

// Distance converts the action count to km using the walking step length
func (t Training) Distance() float64 {
	return float64(t.Action) * LenStep / MInKm
}

// MeanSpeed divides the distance by the duration. Duration must be positive.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Hours
}

func (t Training) minutes() float64 {
	return t.Hours * MinInHour
}

// Running is a run workout
type Running struct {
	Training
}

// NewRunning creates a run workout
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{Training: Training{Action: action, Hours: duration, WeightKg: weight}}
}

// Kind returns KindRunning
func (r *Running) Kind() Kind {
	return KindRunning
}

// SpentCalories returns (18*speed - 20) * weight / 1000 * minutes
func (r *Running) SpentCalories() float64 {
	speed := r.MeanSpeed()
	return (runningCalorieSpeedMultiplier*speed - runningCalorieSpeedShift) *
		r.WeightKg / MInKm * r.minutes()
}

// SportsWalking is a race walking workout
type SportsWalking struct {
	Training
	HeightCm float64
}

// NewSportsWalking creates a race walking workout
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		Training: Training{Action: action, Hours: duration, WeightKg: weight},
		HeightCm: height,
	}
}

// Kind returns KindSportsWalking
func (w *SportsWalking) Kind() Kind {
	return KindSportsWalking
}

// SpentCalories uses floor division of speed squared by height, so any
// speed below sqrt(height) contributes nothing beyond the weight term.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCalorieWeightMultiplier*w.WeightKg +
		floorDiv(speed*speed, w.HeightCm)*walkingCalorieSpeedMultiplier*w.WeightKg) *
		w.minutes()
}

// Swimming is a pool swimming workout
type Swimming struct {
	Training
	LengthPool float64 // meters
	CountPool  float64 // laps
}

// NewSwimming creates a pool swimming workout
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) *Swimming {
	return &Swimming{
		Training:   Training{Action: action, Hours: duration, WeightKg: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// Kind returns KindSwimming
func (s *Swimming) Kind() Kind {
	return KindSwimming
}

// Distance converts strokes to km using the stroke length
func (s *Swimming) Distance() float64 {
	return float64(s.Action) * SwimmingLenStep / MInKm
}

// MeanSpeed is derived from the pool length and lap count, not from Distance
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * s.CountPool / MInKm / s.Hours
}

// SpentCalories returns (speed + 1.1) * 2 * weight
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCalorieSpeedShift) * swimmingCalorieWeightMultiplier * s.WeightKg
}

var (
	_ Workout = (*Running)(nil)
	_ Workout = (*SportsWalking)(nil)
	_ Workout = (*Swimming)(nil)
)
