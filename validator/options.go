package validator

import "github.com/erraggy/hubdoc/oas"

// Option configures a Validator.
type Option func(*config)

type config struct {
	strict bool
	logger oas.Logger
}

// WithStrictMode enables findings for unreferenced components and unused
// tags.
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(c *config) {
		c.strict = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l oas.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
