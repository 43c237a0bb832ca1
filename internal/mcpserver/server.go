// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes hubdoc capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/hubdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `hubdoc MCP server. Generates OpenAPI documents from annotated realtime hub definitions in Go packages.

Every tool takes a source object with exactly one of:
- dir: a directory inside a Go module; patterns default to ./...
- content: the inline source of a single hub package that imports only the standard library

Configuration: defaults are configurable via HUBDOC_MCP_* environment variables set in your MCP client config.

Key settings:
- HUBDOC_MCP_DOCUMENT (default: v1) - document name used when a tool call omits one
- HUBDOC_MCP_VALIDATE_STRICT (default: false) - strict validation by default
- HUBDOC_MCP_CACHE_ENABLED (default: true) - disable module caching entirely
- HUBDOC_MCP_CACHE_DIR_TTL (default: 2m) - cache TTL for directory sources
- HUBDOC_MCP_CACHE_CONTENT_TTL (default: 15m) - cache TTL for inline sources
- HUBDOC_MCP_LIST_LIMIT (default: 100) - default result limit for list_hubs
- HUBDOC_MCP_MAX_INLINE_SIZE (default: 1MiB) - inline source size limit

Caching: loaded packages are cached per session. Directory entries are keyed by path, patterns and the newest Go file mtime, so edits invalidate them. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		moduleCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "hubdoc", Version: hubdoc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate an OpenAPI document from annotated hub definitions. Each documented hub method becomes one path with one operation tagged with its hub name; arguments become query parameters and named struct types become component schemas. Use document to select a document name, format (json or yaml) for the rendering, and output to write to a file instead of returning the document inline. Set validate=true to report validation findings alongside the document.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_hubs",
		Description: "List hub types and the operations they contribute to a document. Returns hub summaries (hub name, Go type, path template, discovery mode, documents, operation count) by default or one entry per operation with detail=true. Filter by hub name (supports * glob). Use group_by (hub or verb) to get operation counts instead of individual items. Default limit is configurable via HUBDOC_MCP_LIST_LIMIT.",
	}, handleListHubs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Generate a document and validate it against the OpenAPI subset hubdoc emits. Returns findings with JSON path locations. Strict mode also reports unreferenced component schemas and unused tags; its default is configurable via HUBDOC_MCP_VALIDATE_STRICT. Use offset/limit to paginate through findings.",
	}, handleValidate)
}
