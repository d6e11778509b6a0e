package builder

import "github.com/sicko7947/fittracker"

// Option is a functional option for configuring workout construction
type Option func(*options)

type options struct {
	strict bool
	locale fittracker.Locale
}

// WithStrictValidation rejects packages whose data breaks the formula
// preconditions: non-positive duration, height or pool size
func WithStrictValidation() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLocale sets the language of the unknown tag error message
func WithLocale(locale fittracker.Locale) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// FromConfig maps a process config onto builder options
func FromConfig(cfg fittracker.ProcessConfig) []Option {
	opts := []Option{WithLocale(cfg.Locale)}
	if cfg.StrictValidation {
		opts = append(opts, WithStrictValidation())
	}
	return opts
}

func applyOptions(opts []Option) options {
	o := options{locale: fittracker.DefaultLocale}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
