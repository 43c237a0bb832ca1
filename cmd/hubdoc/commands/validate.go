package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/internal/cliutil"
	"github.com/erraggy/hubdoc/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	SourceFlags
	Strict bool
	Quiet  bool
	Format string
}

// ValidateOutput is the structured form of a validate run.
type ValidateOutput struct {
	Valid    bool            `json:"valid" yaml:"valid"`
	Document string          `json:"document" yaml:"document"`
	Paths    int             `json:"paths" yaml:"paths"`
	Findings []FindingOutput `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// FindingOutput is one validation finding.
type FindingOutput struct {
	Path    string `json:"path" yaml:"path"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}
	flags.register(fs)

	fs.BoolVar(&flags.Strict, "strict", false, "also report unreferenced components and unused tags")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: hubdoc validate [flags] [packages]\n\n")
		cliutil.Writef(fs.Output(), "Generate a document from annotated hubs and validate it against the OpenAPI subset hubdoc emits.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  hubdoc validate ./hubs/...\n")
		cliutil.Writef(fs.Output(), "  hubdoc validate --strict --document internal ./...\n")
		cliutil.Writef(fs.Output(), "  hubdoc validate --format json ./... | jq '.valid'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Validation successful\n")
		cliutil.Writef(fs.Output(), "  1    Generation failed or the document has findings\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	return runValidate(context.Background(), os.Stdout, os.Stderr, args)
}

func runValidate(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	fs, flags := SetupValidateFlags()
	fs.SetOutput(stderr)
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cfg, err := flags.resolve(fs)
	if err != nil {
		return err
	}
	if flags.Strict {
		cfg.Strict = true
	}
	// Findings are reported below rather than as a generation error.
	strict := cfg.Strict
	cfg.ValidateDoc, cfg.Strict = false, false

	opts, logger, err := prepare(cfg)
	if err != nil {
		return err
	}

	startTime := time.Now()
	doc, err := hubdoc.Generate(ctx, opts...)
	if err != nil {
		return fmt.Errorf("generating document: %w", err)
	}
	v, err := validator.New(validator.WithStrictMode(strict), validator.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := v.Validate(doc)
	if err != nil {
		return fmt.Errorf("validating document: %w", err)
	}
	totalTime := time.Since(startTime)

	output := ValidateOutput{Valid: result.Valid(), Document: cfg.Document, Paths: len(doc.Paths)}
	for _, f := range result.Findings {
		msg := f.Message
		if msg == "" && f.Cause != nil {
			msg = f.Cause.Error()
		}
		output.Findings = append(output.Findings, FindingOutput{Path: f.Path, Field: f.Field, Message: msg})
	}

	if flags.Format != FormatText {
		if err := OutputStructured(stdout, output, flags.Format); err != nil {
			return err
		}
	} else {
		if !flags.Quiet {
			cliutil.Writef(stderr, "hubdoc version: %s\n", hubdoc.Version())
			cliutil.Writef(stderr, "Document: %s\n", output.Document)
			cliutil.Writef(stderr, "Paths: %d\n", output.Paths)
			cliutil.Writef(stderr, "Total Time: %v\n\n", totalTime)
		}
		if len(output.Findings) > 0 {
			cliutil.Writef(stdout, "Findings (%d):\n", len(output.Findings))
			for _, f := range result.Findings {
				cliutil.Writef(stdout, "  %s\n", f.Error())
			}
			cliutil.Writef(stdout, "\n")
		}
		if output.Valid {
			cliutil.Writef(stdout, "✓ Validation passed\n")
		} else {
			cliutil.Writef(stdout, "✗ Validation failed: %d finding(s)\n", len(output.Findings))
		}
	}

	if !output.Valid {
		return ErrFindings
	}
	return nil
}
