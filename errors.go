package fittracker

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes
const (
	ErrCodeUnknownTag    = "UNKNOWN_WORKOUT_TAG"
	ErrCodeInvalidData   = "INVALID_PACKAGE_DATA"
	ErrCodeCancelled     = "CANCELLED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Sentinel errors matched by errors.Is against a TrackerError of the same code
var (
	ErrUnknownWorkoutTag  = &TrackerError{Code: ErrCodeUnknownTag, Message: catalogs[LocaleEN].unknownTag}
	ErrInvalidPackageData = &TrackerError{Code: ErrCodeInvalidData, Message: "invalid package data"}
)

// TrackerError represents an error while turning a package into a summary
type TrackerError struct {
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Tag     string         `json:"tag,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *TrackerError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("[%s] %s (tag: %q)", e.Code, e.Message, e.Tag)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is a TrackerError with the same code
func (e *TrackerError) Is(target error) bool {
	var te *TrackerError
	if !errors.As(target, &te) {
		return false
	}
	return te.Code == e.Code
}

// NewTrackerError creates a new tracker error
func NewTrackerError(code, message string) *TrackerError {
	return &TrackerError{
		Message: message,
		Code:    code,
	}
}

// NewUnknownTagError creates the error returned for an unrecognized workout tag,
// with the message rendered in the given locale
func NewUnknownTagError(tag string, locale Locale) *TrackerError {
	return &TrackerError{
		Message: locale.catalog().unknownTag,
		Code:    ErrCodeUnknownTag,
		Tag:     tag,
	}
}

// NewInvalidDataError creates an error for a package whose data cannot build
// the tagged workout
func NewInvalidDataError(tag, message string) *TrackerError {
	return &TrackerError{
		Message: message,
		Code:    ErrCodeInvalidData,
		Tag:     tag,
	}
}

// WithDetails adds details to the error
func (e *TrackerError) WithDetails(details map[string]any) *TrackerError {
	e.Details = details
	return e
}

// ToTrackerError converts any error into a TrackerError
func ToTrackerError(err error) *TrackerError {
	if err == nil {
		return nil
	}

	var te *TrackerError
	if errors.As(err, &te) {
		return te
	}

	if strings.Contains(err.Error(), "context canceled") || strings.Contains(err.Error(), "context deadline exceeded") {
		return NewTrackerError(ErrCodeCancelled, err.Error())
	}

	return NewTrackerError(ErrCodeInternalError, err.Error())
}

// IsUnknownTagError checks if an error is caused by an unrecognized workout tag
func IsUnknownTagError(err error) bool {
	return errors.Is(err, ErrUnknownWorkoutTag)
}

// IsInvalidDataError checks if an error is caused by malformed package data
func IsInvalidDataError(err error) bool {
	return errors.Is(err, ErrInvalidPackageData)
}
