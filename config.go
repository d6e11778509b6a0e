package fittracker

// ProcessConfig holds the knobs that change how packages become summaries
type ProcessConfig struct {
	// Keep processing the remaining packages after a failure
	ContinueOnError bool

	// Reject non-positive durations, heights and pool sizes
	StrictValidation bool

	// Language of rendered messages and errors
	Locale Locale
}

// DefaultProcessConfig stops at the first bad package and skips precondition checks
var DefaultProcessConfig = ProcessConfig{
	ContinueOnError:  false,
	StrictValidation: false,
	Locale:           DefaultLocale,
}

// ProcessOption allows functional configuration of processing
type ProcessOption func(*ProcessConfig)

// WithContinueOnError keeps a batch going after a rejected package
func WithContinueOnError(continueOnError bool) ProcessOption {
	return func(c *ProcessConfig) {
		c.ContinueOnError = continueOnError
	}
}

// WithStrictValidation enables precondition checks on package data
func WithStrictValidation(strict bool) ProcessOption {
	return func(c *ProcessConfig) {
		c.StrictValidation = strict
	}
}

// WithLocale sets the language of rendered messages
func WithLocale(locale Locale) ProcessOption {
	return func(c *ProcessConfig) {
		c.Locale = locale
	}
}

// NewProcessConfig applies options on top of DefaultProcessConfig
func NewProcessConfig(opts ...ProcessOption) ProcessConfig {
	cfg := DefaultProcessConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Locale.IsValid() {
		cfg.Locale = DefaultLocale
	}
	return cfg
}
