package fittracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProcessConfig(t *testing.T) {
	config := DefaultProcessConfig

	assert.False(t, config.ContinueOnError)
	assert.False(t, config.StrictValidation)
	assert.Equal(t, LocaleRU, config.Locale)
}

func TestNewProcessConfig(t *testing.T) {
	config := NewProcessConfig(
		WithContinueOnError(true),
		WithStrictValidation(true),
		WithLocale(LocaleEN),
	)

	assert.True(t, config.ContinueOnError)
	assert.True(t, config.StrictValidation)
	assert.Equal(t, LocaleEN, config.Locale)
}

func TestNewProcessConfig_InvalidLocale(t *testing.T) {
	config := NewProcessConfig(WithLocale("xx"))
	assert.Equal(t, DefaultLocale, config.Locale)
}

func TestNewProcessConfig_DoesNotMutateDefault(t *testing.T) {
	_ = NewProcessConfig(WithContinueOnError(true))
	assert.False(t, DefaultProcessConfig.ContinueOnError)
}
