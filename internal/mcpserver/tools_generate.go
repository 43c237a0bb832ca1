package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/internal/cliutil"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/schema"
	"github.com/erraggy/hubdoc/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Source         sourceInput `json:"source"                    jsonschema:"The hub packages to document"`
	Document       string      `json:"document,omitempty"        jsonschema:"Document name to build (default from HUBDOC_MCP_DOCUMENT)"`
	Title          string      `json:"title,omitempty"           jsonschema:"info.title of the generated document"`
	Version        string      `json:"version,omitempty"         jsonschema:"info.version of the generated document"`
	Description    string      `json:"description,omitempty"     jsonschema:"info.description of the generated document"`
	OpenAPIVersion string      `json:"openapi_version,omitempty" jsonschema:"OpenAPI version to declare (default 3.0.3)"`
	Naming         string      `json:"naming,omitempty"          jsonschema:"Component naming strategy: default, pascal or type"`
	DefaultVerb    string      `json:"default_verb,omitempty"    jsonschema:"Verb for methods without an explicit verb (default post)"`
	Format         string      `json:"format,omitempty"          jsonschema:"Rendering: json (default) or yaml"`
	Output         string      `json:"output,omitempty"          jsonschema:"Write the document to this file instead of returning it inline"`
	Validate       bool        `json:"validate,omitempty"        jsonschema:"Validate the generated document and report findings"`
}

type generateOutput struct {
	Document     string   `json:"document"`
	PathCount    int      `json:"path_count"`
	SchemaCount  int      `json:"schema_count"`
	Tags         []string `json:"tags,omitempty"`
	FindingCount int      `json:"finding_count,omitempty"`
	WrittenTo    string   `json:"written_to,omitempty"`
	Content      string   `json:"content,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	modules, err := input.Source.resolve(ctx)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts, err := buildGenerateOptions(input)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	opts = append(opts, hubdoc.WithModules(modules...))

	doc, err := hubdoc.Generate(ctx, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Document:  documentName(input.Document),
		PathCount: len(doc.Paths),
	}
	if doc.Components != nil {
		output.SchemaCount = len(doc.Components.Schemas)
	}
	output.Tags = makeSlice[string](len(doc.Tags))
	for _, tag := range doc.Tags {
		output.Tags = append(output.Tags, tag.Name)
	}

	if input.Validate {
		result, err := validator.Validate(doc, validator.WithStrictMode(cfg.ValidateStrict))
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		output.FindingCount = len(result.Findings)
	}

	format := oas.Format(input.Format)
	if input.Format == "" {
		format = cliutil.FormatFor(input.Output, oas.FormatJSON)
	}
	data, err := doc.Marshal(format)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if input.Output != "" {
		if err := cliutil.WriteFile(input.Output, data); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), generateOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Content = string(data)
	}

	return nil, output, nil
}

// buildGenerateOptions translates the MCP input into hubdoc options.
// Omitted fields keep the library defaults.
func buildGenerateOptions(input generateInput) ([]hubdoc.Option, error) {
	opts := []hubdoc.Option{hubdoc.WithDocumentName(documentName(input.Document))}
	if input.Title != "" {
		opts = append(opts, hubdoc.WithTitle(input.Title))
	}
	if input.Version != "" {
		opts = append(opts, hubdoc.WithVersion(input.Version))
	}
	if input.Description != "" {
		opts = append(opts, hubdoc.WithDescription(input.Description))
	}
	if input.OpenAPIVersion != "" {
		opts = append(opts, hubdoc.WithOpenAPIVersion(input.OpenAPIVersion))
	}
	if input.Naming != "" {
		naming, err := schema.ParseNamingStrategy(input.Naming)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hubdoc.WithSchemaNaming(naming))
	}
	if input.DefaultVerb != "" {
		opts = append(opts, hubdoc.WithDefaultVerb(input.DefaultVerb))
	}
	return opts, nil
}
