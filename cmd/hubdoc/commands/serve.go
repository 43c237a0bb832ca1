package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/internal/cliutil"
	"github.com/erraggy/hubdoc/internal/httpserve"
	"github.com/erraggy/hubdoc/oas"
)

// shutdownTimeout bounds graceful shutdown after a signal.
const shutdownTimeout = 5 * time.Second

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	SourceFlags
	Addr     string
	Validate bool
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
// Returns the FlagSet and a ServeFlags struct with bound flag variables.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}
	flags.register(fs)

	fs.StringVar(&flags.Addr, "addr", "", "listen address (default localhost:8080)")
	fs.BoolVar(&flags.Validate, "validate", false, "reject documents with validation findings (HTTP 422)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: hubdoc serve [flags] [packages]\n\n")
		cliutil.Writef(fs.Output(), "Serve generated documents and a Swagger UI. Documents are regenerated on\n")
		cliutil.Writef(fs.Output(), "every request, so source edits show up on reload.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRoutes:\n")
		cliutil.Writef(fs.Output(), "  %s    the document as JSON (?document=<name>)\n", httpserve.JSONPath)
		cliutil.Writef(fs.Output(), "  %s    the document as YAML (?document=<name>)\n", httpserve.YAMLPath)
		cliutil.Writef(fs.Output(), "  %s           Swagger UI\n", httpserve.DocsPath)
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  hubdoc serve ./hubs/...\n")
		cliutil.Writef(fs.Output(), "  hubdoc serve --addr :9000 --title \"Chat API\" ./...\n")
	}

	return fs, flags
}

// documentGenerator runs one pass per request for the requested document.
// Requests run concurrently, so each gets its own option slice.
func documentGenerator(opts []hubdoc.Option) httpserve.Generator {
	opts = slices.Clip(opts)
	return func(ctx context.Context, document string) (*oas.Document, error) {
		return hubdoc.Generate(ctx, append(opts, hubdoc.WithDocumentName(document))...)
	}
}

// HandleServe executes the serve command. It blocks until SIGINT or SIGTERM.
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}

	cfg, err := flags.resolve(fs)
	if err != nil {
		return err
	}
	if flags.Addr != "" {
		cfg.Addr = flags.Addr
	}
	if flags.Validate {
		cfg.ValidateDoc = true
	}
	opts, logger, err := prepare(cfg)
	if err != nil {
		return err
	}

	srv := httpserve.NewServer(cfg.Addr, cfg.Document, documentGenerator(opts), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	cliutil.Writef(os.Stderr, "Serving http://%s%s\n", cfg.Addr, httpserve.DocsPath)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
