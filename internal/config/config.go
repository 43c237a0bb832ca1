// Package config loads hubdoc command configuration from a file, the
// environment and flags, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/erraggy/hubdoc/schema"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v4"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HUBDOC_"

// Config holds the settings shared by the hubdoc subcommands.
type Config struct {
	Patterns       []string `yaml:"patterns" toml:"patterns" env:"PATTERNS" envSeparator:","`
	Dir            string   `yaml:"dir" toml:"dir" env:"DIR"`
	BuildTags      string   `yaml:"build_tags" toml:"build_tags" env:"BUILD_TAGS"`
	Document       string   `yaml:"document" toml:"document" env:"DOCUMENT" validate:"required"`
	Title          string   `yaml:"title" toml:"title" env:"TITLE" validate:"required"`
	Version        string   `yaml:"version" toml:"version" env:"VERSION" validate:"required"`
	Description    string   `yaml:"description" toml:"description" env:"DESCRIPTION"`
	OpenAPIVersion string   `yaml:"openapi" toml:"openapi" env:"OPENAPI_VERSION" validate:"required,startswith=3."`
	Output         string   `yaml:"output" toml:"output" env:"OUTPUT"`
	Format         string   `yaml:"format" toml:"format" env:"FORMAT" validate:"oneof=json yaml"`
	Naming         string   `yaml:"naming" toml:"naming" env:"NAMING" validate:"oneof=default pascal type"`
	NameTemplate   string   `yaml:"name_template" toml:"name_template" env:"NAME_TEMPLATE"`
	DefaultVerb    string   `yaml:"default_verb" toml:"default_verb" env:"DEFAULT_VERB" validate:"omitempty,oneof=get put post delete options head patch trace"`
	LogLevel       string   `yaml:"log_level" toml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	ValidateDoc    bool     `yaml:"validate" toml:"validate" env:"VALIDATE"`
	Strict         bool     `yaml:"strict" toml:"strict" env:"STRICT"`
	Addr           string   `yaml:"addr" toml:"addr" env:"ADDR" validate:"hostname_port"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Patterns:       []string{"."},
		Document:       hubdoc.DefaultDocumentName,
		Title:          hubdoc.DefaultTitle,
		Version:        hubdoc.DefaultVersion,
		OpenAPIVersion: oas.DefaultOpenAPIVersion,
		Format:         string(oas.FormatJSON),
		Naming:         schema.NamingDefault.String(),
		LogLevel:       "warn",
		Addr:           "localhost:8080",
	}
}

// Load builds a configuration from defaults, the file at path (skipped
// when path is empty) and the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML or TOML file into cfg, chosen by extension.
// Keys missing from the file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return &oaserrors.ConfigError{Option: "config", Value: path, Message: "reading file", Cause: err}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return &oaserrors.ConfigError{Option: "config", Value: path, Message: fmt.Sprintf("unsupported file extension %q (want .yaml, .yml or .toml)", ext)}
	}
	if err != nil {
		return &oaserrors.ConfigError{Option: "config", Value: path, Message: "decoding file", Cause: err}
	}
	return nil
}

// ApplyEnv overrides cfg with HUBDOC_* variables. A nil environ reads the
// process environment.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return &oaserrors.ConfigError{Option: "environment", Message: "parsing " + EnvPrefix + "* variables", Cause: err}
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and returns one ConfigError per
// violation, joined.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return &oaserrors.ConfigError{Message: "validating configuration", Cause: err}
	}
	errs := make([]error, 0, len(valErrs))
	for _, ve := range valErrs {
		errs = append(errs, &oaserrors.ConfigError{
			Option:  ve.Field(),
			Value:   ve.Value(),
			Message: formatValidationError(ve),
		})
	}
	return errors.Join(errs...)
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "startswith":
		return fmt.Sprintf("must start with %q", ve.Param())
	case "hostname_port":
		return "must be a host:port address"
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// Options converts the configuration into generation options. Patterns
// are included; callers that pass modules directly may drop them.
func (c *Config) Options(logger oas.Logger) ([]hubdoc.Option, error) {
	naming, err := schema.ParseNamingStrategy(c.Naming)
	if err != nil {
		return nil, err
	}
	opts := []hubdoc.Option{
		hubdoc.WithPatterns(c.Patterns...),
		hubdoc.WithDir(c.Dir),
		hubdoc.WithTitle(c.Title),
		hubdoc.WithVersion(c.Version),
		hubdoc.WithDescription(c.Description),
		hubdoc.WithOpenAPIVersion(c.OpenAPIVersion),
		hubdoc.WithDocumentName(c.Document),
		hubdoc.WithSchemaNaming(naming),
		hubdoc.WithValidation(c.ValidateDoc),
		hubdoc.WithStrictValidation(c.Strict),
		hubdoc.WithLogger(logger),
	}
	if c.BuildTags != "" {
		opts = append(opts, hubdoc.WithBuildFlags("-tags="+c.BuildTags))
	}
	if c.NameTemplate != "" {
		opts = append(opts, hubdoc.WithSchemaNameTemplate(c.NameTemplate))
	}
	if c.DefaultVerb != "" {
		opts = append(opts, hubdoc.WithDefaultVerb(c.DefaultVerb))
	}
	return opts, nil
}
