package builder

import (
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
)

// DefaultOperationKind is the verb of methods whose descriptor does not set one.
const DefaultOperationKind = oas.OperationPost

// Option configures a Builder instance.
// Options are applied when creating a new Builder with New().
type Option func(*config)

type config struct {
	defaultKind oas.OperationKind
	logger      oas.Logger
	err         error
}

func defaultConfig() *config {
	return &config{
		defaultKind: DefaultOperationKind,
		logger:      oas.NopLogger{},
	}
}

// WithLogger sets the logger used for debug output during a pass.
func WithLogger(l oas.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultOperationKind replaces the verb used for methods without an
// explicit one. An unknown verb makes New fail with a configuration error.
func WithDefaultOperationKind(kind oas.OperationKind) Option {
	return func(c *config) {
		k, err := oas.ParseOperationKind(string(kind))
		if err != nil {
			c.err = &oaserrors.ConfigError{Option: "default operation kind", Value: string(kind), Cause: err}
			return
		}
		c.defaultKind = k
	}
}
