// Package commands provides CLI command handlers for hubdoc.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/internal/cliutil"
	"github.com/erraggy/hubdoc/internal/config"
	"github.com/erraggy/hubdoc/oas"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrFindings is returned when a document was generated but failed
// validation. main maps it to exit status 1 without repeating the findings.
var ErrFindings = errors.New("document has validation findings")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", bytes)
	return nil
}

// SourceFlags are the flags every command that loads hubs shares. Flags
// left unset keep the value from the config file or the environment.
type SourceFlags struct {
	ConfigPath   string
	Dir          string
	BuildTags    string
	Document     string
	Title        string
	Version      string
	Naming       string
	NameTemplate string
	DefaultVerb  string
	LogLevel     string
}

// register binds the shared flags to fs.
func (f *SourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "configuration file (.yaml, .yml or .toml)")
	fs.StringVar(&f.Dir, "dir", "", "directory the package patterns are resolved in")
	fs.StringVar(&f.BuildTags, "tags", "", "comma-separated build tags")
	fs.StringVar(&f.Document, "document", "", "document name to build (default \"v1\")")
	fs.StringVar(&f.Title, "title", "", "info.title of the generated document")
	fs.StringVar(&f.Version, "api-version", "", "info.version of the generated document")
	fs.StringVar(&f.Naming, "naming", "", "component naming strategy: default, pascal or type")
	fs.StringVar(&f.NameTemplate, "name-template", "", "text/template for component names")
	fs.StringVar(&f.DefaultVerb, "default-verb", "", "verb for methods without one (default post)")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn or error (default warn)")
}

// resolve loads the config file and environment, then applies every flag
// that was set on fs. Positional arguments replace the package patterns.
func (f *SourceFlags) resolve(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dir":
			cfg.Dir = f.Dir
		case "tags":
			cfg.BuildTags = f.BuildTags
		case "document":
			cfg.Document = f.Document
		case "title":
			cfg.Title = f.Title
		case "api-version":
			cfg.Version = f.Version
		case "naming":
			cfg.Naming = f.Naming
		case "name-template":
			cfg.NameTemplate = f.NameTemplate
		case "default-verb":
			cfg.DefaultVerb = f.DefaultVerb
		case "log-level":
			cfg.LogLevel = f.LogLevel
		}
	})
	if fs.NArg() > 0 {
		cfg.Patterns = fs.Args()
	}
	return cfg, nil
}

// NewLogger returns a leveled logger writing human-readable lines to w.
func NewLogger(w io.Writer, level string) (oas.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "hubdoc",
		ReportTimestamp: true,
	})
	return oas.NewSlogAdapter(slog.New(handler)), nil
}

// prepare turns a resolved config into library options and a logger.
func prepare(cfg *config.Config) ([]hubdoc.Option, oas.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, nil, err
	}
	return opts, logger, nil
}

// parseArgs parses args with fs, treating -h as success.
func parseArgs(fs *flag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
