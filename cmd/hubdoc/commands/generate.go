package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/internal/cliutil"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	SourceFlags
	Output   string
	Format   string
	Validate bool
	Strict   bool
	Quiet    bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}
	flags.register(fs)

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "document format: json or yaml (default: from the output extension, else json)")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the generated document")
	fs.BoolVar(&flags.Strict, "strict", false, "validate in strict mode (implies --validate)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no summary on stderr")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no summary on stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: hubdoc generate [flags] [packages]\n\n")
		cliutil.Writef(fs.Output(), "Generate an OpenAPI document from annotated hub definitions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  hubdoc generate ./hubs/...\n")
		cliutil.Writef(fs.Output(), "  hubdoc generate -o openapi.yaml --title \"Chat API\" ./...\n")
		cliutil.Writef(fs.Output(), "  hubdoc generate --document internal --strict -o internal.json ./...\n")
		cliutil.Writef(fs.Output(), "  hubdoc generate --config hubdoc.toml\n")
		cliutil.Writef(fs.Output(), "\nConfiguration:\n")
		cliutil.Writef(fs.Output(), "  Settings are read from --config, then HUBDOC_* environment variables,\n")
		cliutil.Writef(fs.Output(), "  then flags. Package patterns default to \".\".\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	return runGenerate(context.Background(), os.Stdout, os.Stderr, args)
}

func runGenerate(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	fs, flags := SetupGenerateFlags()
	fs.SetOutput(stderr)
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}

	cfg, err := flags.resolve(fs)
	if err != nil {
		return err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o", "output":
			cfg.Output = flags.Output
		case "format":
			cfg.Format = flags.Format
		case "validate":
			cfg.ValidateDoc = flags.Validate
		case "strict":
			cfg.Strict = flags.Strict
		}
	})
	format := oas.Format(cfg.Format)
	if flags.Format == "" {
		format = cliutil.FormatFor(cfg.Output, format)
	}

	opts, _, err := prepare(cfg)
	if err != nil {
		return err
	}

	startTime := time.Now()
	doc, err := hubdoc.Generate(ctx, opts...)
	totalTime := time.Since(startTime)
	findings := err != nil && doc != nil && errors.Is(err, oaserrors.ErrValidation)
	if err != nil && !findings {
		return fmt.Errorf("generating document: %w", err)
	}

	data, mErr := doc.Marshal(format)
	if mErr != nil {
		return mErr
	}
	if wErr := cliutil.WriteOutput(stdout, cfg.Output, data); wErr != nil {
		return fmt.Errorf("writing output: %w", wErr)
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "hubdoc version: %s\n", hubdoc.Version())
		cliutil.Writef(stderr, "Document: %s\n", cfg.Document)
		cliutil.Writef(stderr, "Paths: %d\n", len(doc.Paths))
		cliutil.Writef(stderr, "Tags: %d\n", len(doc.Tags))
		if doc.Components != nil {
			cliutil.Writef(stderr, "Schemas: %d\n", len(doc.Components.Schemas))
		}
		cliutil.Writef(stderr, "Total Time: %v\n", totalTime)
		if cfg.Output != "" && cfg.Output != "-" {
			cliutil.Writef(stderr, "Output: %s\n", cfg.Output)
		}
	}

	if findings {
		cliutil.Writef(stderr, "\nFindings:\n%v\n", err)
		return ErrFindings
	}
	return nil
}
