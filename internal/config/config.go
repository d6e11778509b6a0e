package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/sicko7947/fittracker"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      LogConfig            `yaml:"log"`
	Locale   string               `yaml:"locale"`
	Engine   EngineConfig         `yaml:"engine"`
	HTTP     HTTPConfig           `yaml:"http"`
	Packages []fittracker.Package `yaml:"packages"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

type EngineConfig struct {
	ContinueOnError  bool `yaml:"continue_on_error"`
	StrictValidation bool `yaml:"strict_validation"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Locale: string(fittracker.DefaultLocale),
		HTTP: HTTPConfig{
			Addr: ":3000",
		},
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides. An empty path skips the file.
// Env vars:
//
//	FITTRACKER_LOG_LEVEL, FITTRACKER_LOG_FORMAT, FITTRACKER_LOCALE,
//	FITTRACKER_HTTP_ADDR, FITTRACKER_CONTINUE_ON_ERROR,
//	FITTRACKER_STRICT_VALIDATION
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITTRACKER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FITTRACKER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FITTRACKER_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("FITTRACKER_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("FITTRACKER_CONTINUE_ON_ERROR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Engine.ContinueOnError = b
		}
	}
	if v := os.Getenv("FITTRACKER_STRICT_VALIDATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Engine.StrictValidation = b
		}
	}
}

func (c *Config) validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q is invalid", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if !fittracker.Locale(c.Locale).IsValid() {
		return fmt.Errorf("locale %q is not supported", c.Locale)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr is required")
	}
	for i, pkg := range c.Packages {
		if pkg.Type == "" {
			return fmt.Errorf("packages[%d].type is required", i)
		}
	}
	return nil
}

// ProcessConfig maps the file settings onto the engine configuration
func (c *Config) ProcessConfig() fittracker.ProcessConfig {
	return fittracker.NewProcessConfig(
		fittracker.WithContinueOnError(c.Engine.ContinueOnError),
		fittracker.WithStrictValidation(c.Engine.StrictValidation),
		fittracker.WithLocale(fittracker.Locale(c.Locale)),
	)
}

// PackagesOrSamples returns the configured packages, or the built-in
// samples when none are configured
func (c *Config) PackagesOrSamples() []fittracker.Package {
	if len(c.Packages) == 0 {
		return fittracker.SamplePackages()
	}
	return c.Packages
}

// NewLogger builds the zerolog logger described by the log section
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if c.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(level)
}
