package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/cmd/hubdoc/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Println(hubdoc.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "generate", "gen":
		err = commands.HandleGenerate(args)
	case "validate":
		err = commands.HandleValidate(args)
	case "list":
		err = commands.HandleList(args)
	case "serve":
		err = commands.HandleServe(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, commands.ErrFindings) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// commandNames lists the commands offered as suggestions for typos.
var commandNames = []string{"generate", "validate", "list", "serve", "mcp", "version", "help"}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`hubdoc - OpenAPI documents for realtime hubs

Usage:
  hubdoc <command> [options] [packages]

Commands:
  generate    Generate an OpenAPI document from annotated hub definitions
  validate    Generate and validate a document
  list        List the operations (or hubs) a document would contain
  serve       Serve generated documents and a Swagger UI over HTTP
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  hubdoc generate -o openapi.yaml ./hubs/...
  hubdoc validate --strict ./...
  hubdoc list --hubs ./...
  hubdoc serve --addr :8080 ./...

Run 'hubdoc <command> --help' for more information on a command.`)
}
