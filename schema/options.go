package schema

import (
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
)

// Option configures a Registry.
type Option func(*config) error

type config struct {
	naming   NamingStrategy
	template string
	logger   oas.Logger
}

// WithNaming selects a built-in component naming strategy.
func WithNaming(strategy NamingStrategy) Option {
	return func(c *config) error {
		if strategy < NamingDefault || strategy > NamingTypeOnly {
			return &oaserrors.ConfigError{Option: "naming", Value: int(strategy), Message: "unknown naming strategy"}
		}
		c.naming = strategy
		return nil
	}
}

// WithNameTemplate names components with a text/template executed against
// NameContext. It takes precedence over WithNaming.
//
//	schema.WithNameTemplate(`{{pascal .Package}}{{.Type}}`)
func WithNameTemplate(tmpl string) Option {
	return func(c *config) error {
		c.template = tmpl
		return nil
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l oas.Logger) Option {
	return func(c *config) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}
