// Package oaserrors provides structured error types for the hubdoc library.
//
// This package contains the error types used throughout hubdoc:
//   - LoadError: Hub metadata could not be loaded (package or directive errors)
//   - ConfigError: Invalid configuration or input options
//   - PreconditionError: A pipeline was constructed without its required inputs
//   - DuplicatePathError: A synthesized path collides with an existing entry
//   - ValidationError: A generated document violates the emitted OpenAPI subset
//
// # Usage with errors.Is
//
//	doc, err := hubdoc.Generate(ctx, hubdoc.WithPatterns("./hubs/..."))
//	if errors.Is(err, oaserrors.ErrDuplicatePath) {
//	    // two hub methods resolved to the same path
//	}
package oaserrors

import (
	"errors"
	"fmt"
	"go/token"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrLoad indicates hub metadata could not be loaded.
	ErrLoad = errors.New("load error")

	// ErrConfig indicates an unsupported or invalid configuration value.
	ErrConfig = errors.New("configuration error")

	// ErrPrecondition indicates a required input was missing.
	ErrPrecondition = errors.New("precondition failed")

	// ErrDuplicatePath indicates a path entry already exists in the document.
	ErrDuplicatePath = errors.New("duplicate path")

	// ErrValidation indicates a generated document failed validation.
	ErrValidation = errors.New("validation error")
)

// LoadError represents a failure to load hub metadata from source.
type LoadError struct {
	// Package is the import path being loaded, if known
	Package string
	// Pos is the source position of the offending declaration or directive
	Pos token.Position
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := "load error"
	if e.Pos.IsValid() {
		msg += " at " + e.Pos.String()
	} else if e.Package != "" {
		msg += " in " + e.Package
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, unknown enum values, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// PreconditionError reports a required input that was not supplied.
type PreconditionError struct {
	// Input names the missing input (e.g., "modules")
	Input string
	// Message describes the failed precondition
	Message string
}

// Error returns a human-readable error message.
func (e *PreconditionError) Error() string {
	msg := "precondition failed"
	if e.Input != "" {
		msg += ": " + e.Input
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// ValidationError represents a generated document that violates the
// OpenAPI subset hubdoc emits.
type ValidationError struct {
	// Path is the JSON path to the problematic field (e.g., "paths./chat/Chat/Send.post")
	Path string
	// Field is the specific field name
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
