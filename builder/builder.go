// Package builder turns sensor packages into concrete workouts.
package builder

import (
	"github.com/sicko7947/fittracker"
)

type constructor struct {
	kind   fittracker.Kind
	fields []string
	build  func(data []float64) fittracker.Workout
}

var constructors = map[string]constructor{
	fittracker.TagSwimming: {
		kind:   fittracker.KindSwimming,
		fields: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		build: func(d []float64) fittracker.Workout {
			return fittracker.NewSwimming(int(d[0]), d[1], d[2], d[3], d[4])
		},
	},
	fittracker.TagRunning: {
		kind:   fittracker.KindRunning,
		fields: []string{"action", "duration", "weight"},
		build: func(d []float64) fittracker.Workout {
			return fittracker.NewRunning(int(d[0]), d[1], d[2])
		},
	},
	fittracker.TagWalking: {
		kind:   fittracker.KindSportsWalking,
		fields: []string{"action", "duration", "weight", "height"},
		build: func(d []float64) fittracker.Workout {
			return fittracker.NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// Tags returns the supported workout tags in a stable order
func Tags() []string {
	return []string{fittracker.TagSwimming, fittracker.TagRunning, fittracker.TagWalking}
}

// KindOf returns the variant a tag maps to
func KindOf(tag string) (fittracker.Kind, bool) {
	c, ok := constructors[tag]
	if !ok {
		return "", false
	}
	return c.kind, true
}

// Fields returns the positional field names expected for a tag
func Fields(tag string) []string {
	c, ok := constructors[tag]
	if !ok {
		return nil
	}
	out := make([]string, len(c.fields))
	copy(out, c.fields)
	return out
}

// ReadPackage builds the workout variant named by tag from positional data.
// The action count is truncated to an integer.
func ReadPackage(tag string, data []float64, opts ...Option) (fittracker.Workout, error) {
	o := applyOptions(opts)

	c, ok := constructors[tag]
	if !ok {
		return nil, fittracker.NewUnknownTagError(tag, o.locale)
	}

	if err := ValidateData(tag, c.fields, data); err != nil {
		return nil, err
	}
	if o.strict {
		if err := ValidatePreconditions(tag, c.fields, data); err != nil {
			return nil, err
		}
	}

	return c.build(data), nil
}

// Build is ReadPackage for a Package value
func Build(pkg fittracker.Package, opts ...Option) (fittracker.Workout, error) {
	return ReadPackage(pkg.Type, pkg.Data, opts...)
}
