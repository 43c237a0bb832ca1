package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/hubdoc/internal/cliutil"
	"github.com/erraggy/hubdoc/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: hubdoc mcp\n\n")
		cliutil.Writef(fs.Output(), "Run a Model Context Protocol server over stdio exposing the\n")
		cliutil.Writef(fs.Output(), "generate, list_hubs and validate tools. Defaults are read from\n")
		cliutil.Writef(fs.Output(), "HUBDOC_MCP_* environment variables.\n")
	}
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
