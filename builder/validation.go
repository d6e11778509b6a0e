package builder

import (
	"fmt"
	"math"

	"github.com/sicko7947/fittracker"
)

// ValidateData checks that data matches the positional layout of the tag
func ValidateData(tag string, fields []string, data []float64) error {
	if len(data) != len(fields) {
		return fittracker.NewInvalidDataError(tag,
			fmt.Sprintf("expected %d values, got %d", len(fields), len(data))).
			WithDetails(map[string]any{"fields": fields})
	}

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fittracker.NewInvalidDataError(tag,
				fmt.Sprintf("%s is not a finite number", fields[i]))
		}
		if fields[i] == "action" && (v < math.MinInt32 || v > math.MaxInt32) {
			return fittracker.NewInvalidDataError(tag, "action is out of range").
				WithDetails(map[string]any{"min": math.MinInt32, "max": math.MaxInt32})
		}
	}

	return nil
}

// ValidatePreconditions rejects values the formulas divide by or treat as
// physical sizes
func ValidatePreconditions(tag string, fields []string, data []float64) error {
	for i, name := range fields {
		switch name {
		case "action":
			if data[i] < 0 {
				return fittracker.NewInvalidDataError(tag, "action must not be negative")
			}
		case "duration", "weight", "height", "length_pool", "count_pool":
			if data[i] <= 0 {
				return fittracker.NewInvalidDataError(tag, fmt.Sprintf("%s must be positive", name))
			}
		}
	}
	return nil
}
