package hubdoc

import (
	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/erraggy/hubdoc/schema"
)

// Defaults applied when the corresponding option is not given.
const (
	DefaultTitle        = "Hub API"
	DefaultVersion      = "1.0.0"
	DefaultDocumentName = "v1"
)

// Option configures a generation pass.
type Option func(*config) error

type config struct {
	// Input source: patterns are loaded only when no modules are given
	patterns   []string
	dir        string
	buildFlags []string
	modules    []hub.Module

	// Document metadata
	title          string
	version        string
	description    string
	openAPIVersion string
	documentName   string

	// Pipeline configuration
	naming       schema.NamingStrategy
	nameTemplate string
	defaultVerb  oas.OperationKind
	validate     bool
	strict       bool
	logger       oas.Logger
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		title:          DefaultTitle,
		version:        DefaultVersion,
		openAPIVersion: oas.DefaultOpenAPIVersion,
		documentName:   DefaultDocumentName,
		logger:         oas.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithPatterns sets the package patterns to load, e.g. "./hubs/...".
// Default: "."
func WithPatterns(patterns ...string) Option {
	return func(cfg *config) error {
		cfg.patterns = append(cfg.patterns, patterns...)
		return nil
	}
}

// WithDir sets the directory patterns are resolved in.
func WithDir(dir string) Option {
	return func(cfg *config) error {
		cfg.dir = dir
		return nil
	}
}

// WithBuildFlags passes flags such as -tags to the go command.
func WithBuildFlags(flags ...string) Option {
	return func(cfg *config) error {
		cfg.buildFlags = append(cfg.buildFlags, flags...)
		return nil
	}
}

// WithModules supplies preloaded modules. Patterns are ignored when
// modules are given.
func WithModules(modules ...hub.Module) Option {
	return func(cfg *config) error {
		cfg.modules = append(cfg.modules, modules...)
		return nil
	}
}

// WithTitle sets info.title.
func WithTitle(title string) Option {
	return func(cfg *config) error {
		if title == "" {
			return &oaserrors.ConfigError{Option: "title", Message: "title cannot be empty"}
		}
		cfg.title = title
		return nil
	}
}

// WithVersion sets info.version.
func WithVersion(version string) Option {
	return func(cfg *config) error {
		if version == "" {
			return &oaserrors.ConfigError{Option: "version", Message: "version cannot be empty"}
		}
		cfg.version = version
		return nil
	}
}

// WithDescription sets info.description.
func WithDescription(description string) Option {
	return func(cfg *config) error {
		cfg.description = description
		return nil
	}
}

// WithOpenAPIVersion sets the openapi field.
// Default: 3.0.3
func WithOpenAPIVersion(v string) Option {
	return func(cfg *config) error {
		cfg.openAPIVersion = v
		return nil
	}
}

// WithDocumentName selects which document is generated. Hubs restricted to
// other documents are skipped.
// Default: "v1"
func WithDocumentName(name string) Option {
	return func(cfg *config) error {
		cfg.documentName = name
		return nil
	}
}

// WithSchemaNaming selects the component naming strategy.
func WithSchemaNaming(strategy schema.NamingStrategy) Option {
	return func(cfg *config) error {
		cfg.naming = strategy
		return nil
	}
}

// WithSchemaNameTemplate names components with a text/template. See
// schema.WithNameTemplate.
func WithSchemaNameTemplate(tmpl string) Option {
	return func(cfg *config) error {
		cfg.nameTemplate = tmpl
		return nil
	}
}

// WithDefaultVerb sets the verb of methods whose descriptor has none.
// Default: post
func WithDefaultVerb(verb string) Option {
	return func(cfg *config) error {
		kind, err := oas.ParseOperationKind(verb)
		if err != nil {
			return &oaserrors.ConfigError{Option: "default verb", Value: verb, Cause: err}
		}
		cfg.defaultVerb = kind
		return nil
	}
}

// WithValidation validates the generated document. Findings are returned
// as an error matching oaserrors.ErrValidation alongside the document.
func WithValidation(enabled bool) Option {
	return func(cfg *config) error {
		cfg.validate = enabled
		return nil
	}
}

// WithStrictValidation enables validation in strict mode.
func WithStrictValidation(enabled bool) Option {
	return func(cfg *config) error {
		cfg.strict = enabled
		if enabled {
			cfg.validate = true
		}
		return nil
	}
}

// WithLogger sets the logger passed to every stage of the pass.
func WithLogger(l oas.Logger) Option {
	return func(cfg *config) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}
