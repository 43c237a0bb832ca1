package commands

import (
	"context"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/builder"
	"github.com/erraggy/hubdoc/internal/cliutil"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	SourceFlags
	Hubs   bool
	Quiet  bool
	Format string
}

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a ListFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}
	flags.register(fs)

	fs.BoolVar(&flags.Hubs, "hubs", false, "list hub types instead of operations")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: hubdoc list [flags] [packages]\n\n")
		cliutil.Writef(fs.Output(), "List the operations a document would contain, without writing it.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  hubdoc list ./hubs/...\n")
		cliutil.Writef(fs.Output(), "  hubdoc list --hubs ./...\n")
		cliutil.Writef(fs.Output(), "  hubdoc list -q --document internal ./... | cut -f2\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	return runList(context.Background(), os.Stdout, os.Stderr, args)
}

func runList(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	fs, flags := SetupListFlags()
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
	cfg.ValidateDoc, cfg.Strict = false, false
	opts, _, err := prepare(cfg)
	if err != nil {
		return err
	}

	var headers []string
	var rows [][]string
	if flags.Hubs {
		hubs, err := hubdoc.Hubs(ctx, opts...)
		if err != nil {
			return err
		}
		headers = []string{"HUB", "TYPE", "PATH", "DISCOVERY", "DOCUMENTS", "HIDDEN"}
		for _, h := range hubs {
			rows = append(rows, []string{
				builder.HubName(h.Name),
				h.Key(),
				h.Hub.Path,
				string(h.Hub.Discovery),
				strings.Join(h.Hub.Documents, ","),
				strconv.FormatBool(h.Hidden),
			})
		}
	} else {
		entries, err := hubdoc.Entries(ctx, opts...)
		if err != nil {
			return err
		}
		headers = []string{"VERB", "PATH", "HUB", "METHOD", "PARAMETERS"}
		for _, e := range entries {
			params := make([]string, 0, len(e.Operation.Parameters))
			for _, p := range e.Operation.Parameters {
				params = append(params, p.Name)
			}
			rows = append(rows, []string{
				strings.ToUpper(string(e.Kind)),
				e.Path,
				e.Tag,
				e.Method.Name,
				strings.Join(params, ","),
			})
		}
	}

	if flags.Format != FormatText {
		return RenderSummaryStructured(stdout, headers, rows, flags.Format)
	}
	RenderSummaryTable(stdout, headers, rows, flags.Quiet)
	return nil
}
