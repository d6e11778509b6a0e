package fittracker

import "math"

// floorDiv divides and rounds the quotient toward negative infinity.
// The walking calorie formula depends on this truncation.
func floorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

// ToPtr returns a pointer to the given value
func ToPtr[T any](v T) *T {
	return &v
}
