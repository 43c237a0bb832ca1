package mcpserver

import (
	"context"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Source   sourceInput `json:"source"             jsonschema:"The hub packages to generate and validate"`
	Document string      `json:"document,omitempty" jsonschema:"Document name to build (default from HUBDOC_MCP_DOCUMENT)"`
	Strict   *bool       `json:"strict,omitempty"   jsonschema:"Enable strict validation mode"`
	Offset   int         `json:"offset,omitempty"   jsonschema:"Skip the first N findings (for pagination)"`
	Limit    int         `json:"limit,omitempty"    jsonschema:"Maximum number of findings to return (default 100)"`
}

type validateIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Document     string          `json:"document"`
	PathCount    int             `json:"path_count"`
	FindingCount int             `json:"finding_count"`
	Returned     int             `json:"returned"`
	Findings     []validateIssue `json:"findings,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ValidateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	modules, err := input.Source.resolve(ctx)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	document := documentName(input.Document)
	doc, err := hubdoc.Generate(ctx,
		hubdoc.WithModules(modules...),
		hubdoc.WithDocumentName(document))
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	v, err := validator.New(validator.WithStrictMode(strict))
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	result, err := v.Validate(doc)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid(),
		Document:     document,
		PathCount:    len(doc.Paths),
		FindingCount: len(result.Findings),
	}
	output.Findings = makeSlice[validateIssue](len(result.Findings))
	for _, f := range result.Findings {
		issue := validateIssue{Path: f.Path, Field: f.Field, Message: f.Message}
		if issue.Message == "" && f.Cause != nil {
			issue.Message = f.Cause.Error()
		}
		output.Findings = append(output.Findings, issue)
	}

	output.Findings = paginate(output.Findings, input.Offset, input.Limit)
	output.Returned = len(output.Findings)

	return nil, output, nil
}
