package builder

import (
	"fmt"
	"strings"

	"github.com/erraggy/hubdoc/oaserrors"
)

// ComponentType identifies the level of the hub model where an error occurred.
type ComponentType string

const (
	// ComponentHub indicates an error in a hub descriptor.
	ComponentHub ComponentType = "hub"
	// ComponentMethod indicates an error in a method descriptor.
	ComponentMethod ComponentType = "method"
	// ComponentArgument indicates an error while resolving arguments.
	ComponentArgument ComponentType = "argument"
)

// BuilderError represents a structured error from the builder package.
// It carries enough context to find the offending annotation.
type BuilderError struct {
	// Component is the level where the error occurred.
	Component ComponentType
	// Type is the hub type key (package path and name).
	Type string
	// Method is the method name (for method and argument errors).
	Method string
	// Field is the descriptor field with the error (e.g., "discovery").
	Field string
	// Value is the offending value.
	Value any
	// Message describes the error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface with a detailed, formatted message.
func (e *BuilderError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")

	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}

	if e.Type != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Type)
		if e.Method != "" {
			sb.WriteString(".")
			sb.WriteString(e.Method)
		}
	}

	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}

	if e.Value != nil {
		fmt.Fprintf(&sb, " (value: %q)", fmt.Sprint(e.Value))
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// All BuilderErrors are configuration errors, so callers can use
// errors.Is(err, oaserrors.ErrConfig).
func (e *BuilderError) Is(target error) bool {
	return target == oaserrors.ErrConfig
}

// Location returns a descriptive location string.
func (e *BuilderError) Location() string {
	switch {
	case e.Type != "" && e.Method != "":
		return e.Type + "." + e.Method
	case e.Type != "":
		return e.Type
	case e.Component != "":
		return string(e.Component)
	default:
		return "unknown"
	}
}

// NewUnsupportedDiscoveryError reports a hub discovery mode outside the
// decision table.
func NewUnsupportedDiscoveryError(typeKey string, mode any) *BuilderError {
	return &BuilderError{
		Component: ComponentHub,
		Type:      typeKey,
		Field:     "discovery",
		Value:     mode,
		Message:   "unsupported discovery mode",
	}
}

// NewUnsupportedArgDiscoveryError reports a method argument override
// outside the decision table.
func NewUnsupportedArgDiscoveryError(typeKey, method string, value any) *BuilderError {
	return &BuilderError{
		Component: ComponentMethod,
		Type:      typeKey,
		Method:    method,
		Field:     "args",
		Value:     value,
		Message:   "unsupported argument discovery override",
	}
}

// NewInvalidVerbError reports an unknown operation kind on a method.
func NewInvalidVerbError(typeKey, method string, verb any, cause error) *BuilderError {
	return &BuilderError{
		Component: ComponentMethod,
		Type:      typeKey,
		Method:    method,
		Field:     "verb",
		Value:     verb,
		Cause:     cause,
	}
}
