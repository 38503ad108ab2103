// Package errors provides structured error handling for seedphrase.
// It defines sentinel errors and helpers for adding context, details,
// and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// GeneralCode is the code reported for errors that are not a SeedError.
const GeneralCode = "GENERAL_ERROR"

// SeedError is the structured error type for seedphrase.
type SeedError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the caller
	Cause      error             // Underlying error
}

func (e *SeedError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SeedError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for SeedError.
func (e *SeedError) Is(target error) bool {
	var t *SeedError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &SeedError{
		Code:    GeneralCode,
		Message: "an error occurred",
	}

	ErrInvalidInput = &SeedError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}

	// ErrInvalidEntropy is returned when entropy is not 16, 20, 24, 28 or 32 bytes.
	ErrInvalidEntropy = &SeedError{
		Code:    "INVALID_ENTROPY",
		Message: "invalid entropy length",
	}

	// ErrInvalidPhrase is returned for unknown words, bad checksums and bad word counts.
	ErrInvalidPhrase = &SeedError{
		Code:    "INVALID_PHRASE",
		Message: "invalid seed phrase",
	}

	// ErrInvalidIndex is returned when a derivation path cannot be parsed or derived.
	// The assembled path is stored under the "path" detail.
	ErrInvalidIndex = &SeedError{
		Code:    "INVALID_INDEX",
		Message: "invalid derivation path",
	}

	// ErrInvalidKey is returned when StrKey text cannot be decoded into a key.
	ErrInvalidKey = &SeedError{
		Code:    "INVALID_KEY",
		Message: "invalid encoded key",
	}

	// Config-specific errors.
	ErrConfigNotFound = &SeedError{
		Code:    "CONFIG_NOT_FOUND",
		Message: "configuration file not found",
	}

	ErrConfigInvalid = &SeedError{
		Code:    "CONFIG_INVALID",
		Message: "configuration file is invalid",
	}
)

// New creates a new SeedError with the given code and message.
func New(code, message string) *SeedError {
	return &SeedError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *SeedError
	if errors.As(err, &se) {
		return &SeedError{
			Code:       se.Code,
			Message:    fmt.Sprintf("%s: %s", msg, se.Message),
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      err,
		}
	}

	return &SeedError{
		Code:    GeneralCode,
		Message: msg,
		Cause:   err,
	}
}

// WithCause attaches an underlying cause to an error while keeping its code.
func WithCause(err, cause error) error {
	if err == nil {
		return nil
	}

	var se *SeedError
	if errors.As(err, &se) {
		return &SeedError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      cause,
		}
	}

	return &SeedError{
		Code:    GeneralCode,
		Message: err.Error(),
		Cause:   cause,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *SeedError
	if errors.As(err, &se) {
		return &SeedError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    details,
			Suggestion: se.Suggestion,
			Cause:      se.Cause,
		}
	}

	return &SeedError{
		Code:    GeneralCode,
		Message: err.Error(),
		Details: details,
		Cause:   err,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var se *SeedError
	if errors.As(err, &se) {
		return &SeedError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: suggestion,
			Cause:      se.Cause,
		}
	}

	return &SeedError{
		Code:       GeneralCode,
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Code returns the error code for an error.
func Code(err error) string {
	var se *SeedError
	if errors.As(err, &se) {
		return se.Code
	}
	return GeneralCode
}

// Detail returns a single detail value, or "" when the error carries none.
func Detail(err error, key string) string {
	var se *SeedError
	if errors.As(err, &se) {
		return se.Details[key]
	}
	return ""
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
