package oaserrors

import (
	"errors"
	"fmt"
	"go/token"
	"testing"
)

func TestLoadError(t *testing.T) {
	t.Run("Error message with position", func(t *testing.T) {
		err := &LoadError{
			Package: "example.com/chat",
			Pos:     token.Position{Filename: "chat.go", Line: 12, Column: 1},
			Message: "unknown directive //hubdoc:hubb",
		}
		want := "load error at chat.go:12:1: unknown directive //hubdoc:hubb"
		if msg := err.Error(); msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with package only", func(t *testing.T) {
		cause := errors.New("no Go files")
		err := &LoadError{Package: "example.com/empty", Cause: cause}
		want := "load error in example.com/empty: no Go files"
		if msg := err.Error(); msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &LoadError{}
		if err.Error() != "load error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &LoadError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrLoad only", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &LoadError{Message: "x"})
		if !errors.Is(err, ErrLoad) {
			t.Error("errors.Is should match ErrLoad")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("errors.Is should not match ErrConfig")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("not in enum")
		err := &ConfigError{
			Option:  "discovery",
			Value:   "Everything",
			Message: "unsupported discovery mode",
			Cause:   cause,
		}
		want := "configuration error for discovery (value: Everything): unsupported discovery mode: not in enum"
		if msg := err.Error(); msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		var err error = &ConfigError{Option: "naming"}
		if !errors.Is(err, ErrConfig) {
			t.Error("errors.Is should match ErrConfig")
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Option != "naming" {
			t.Error("errors.As should extract ConfigError")
		}
	})
}

func TestPreconditionError(t *testing.T) {
	err := &PreconditionError{Input: "modules", Message: "at least one module is required"}
	want := "precondition failed: modules: at least one module is required"
	if msg := err.Error(); msg != want {
		t.Errorf("unexpected error message: %s", msg)
	}
	if !errors.Is(err, ErrPrecondition) {
		t.Error("errors.Is should match ErrPrecondition")
	}
	if errors.Is(err, ErrLoad) {
		t.Error("errors.Is should not match ErrLoad")
	}
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with path and field", func(t *testing.T) {
		err := &ValidationError{
			Path:    "paths./chat/Chat/Send.post.parameters[0]",
			Field:   "in",
			Value:   "path",
			Message: "hub parameters must be query parameters",
		}
		want := "validation error at paths./chat/Chat/Send.post.parameters[0].in: hub parameters must be query parameters"
		if msg := err.Error(); msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is and Unwrap", func(t *testing.T) {
		cause := errors.New("schema mismatch")
		err := &ValidationError{Cause: cause}
		if !errors.Is(err, ErrValidation) {
			t.Error("errors.Is should match ErrValidation")
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should reach the cause")
		}
	})
}
