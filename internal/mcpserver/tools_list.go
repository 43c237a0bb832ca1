package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/builder"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listHubsInput struct {
	Source   sourceInput `json:"source"             jsonschema:"The hub packages to inspect"`
	Document string      `json:"document,omitempty" jsonschema:"Document whose operations are counted (default from HUBDOC_MCP_DOCUMENT)"`
	Hub      string      `json:"hub,omitempty"      jsonschema:"Filter by hub name, e.g. Chat (supports * glob)"`
	Detail   bool        `json:"detail,omitempty"   jsonschema:"Return one entry per operation instead of hub summaries"`
	GroupBy  string      `json:"group_by,omitempty" jsonschema:"Group operations and return counts instead of individual items. Values: hub, verb"`
	Offset   int         `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
	Limit    int         `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100, 25 with detail)"`
}

type hubSummary struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Path       string   `json:"path"`
	Discovery  string   `json:"discovery"`
	Documents  []string `json:"documents,omitempty"`
	Hidden     bool     `json:"hidden,omitempty"`
	InDocument bool     `json:"in_document"`
	Operations int      `json:"operations"`
}

type operationSummary struct {
	Hub        string   `json:"hub"`
	Method     string   `json:"method"`
	Verb       string   `json:"verb"`
	Path       string   `json:"path"`
	Summary    string   `json:"summary,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
}

type listHubsOutput struct {
	Document   string             `json:"document"`
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Hubs       []hubSummary       `json:"hubs,omitempty"`
	Operations []operationSummary `json:"operations,omitempty"`
	Groups     []groupCount       `json:"groups,omitempty"`
}

func handleListHubs(ctx context.Context, _ *mcp.CallToolRequest, input listHubsInput) (*mcp.CallToolResult, listHubsOutput, error) {
	if err := validateGroupBy(input.GroupBy, input.Detail, []string{"hub", "verb"}); err != nil {
		return errResult(err), listHubsOutput{}, nil
	}
	if err := validateGlobPattern(input.Hub); err != nil {
		return errResult(err), listHubsOutput{}, nil
	}

	modules, err := input.Source.resolve(ctx)
	if err != nil {
		return errResult(err), listHubsOutput{}, nil
	}
	document := documentName(input.Document)
	opts := []hubdoc.Option{hubdoc.WithModules(modules...), hubdoc.WithDocumentName(document)}

	hubs, err := hubdoc.Hubs(ctx, opts...)
	if err != nil {
		return errResult(err), listHubsOutput{}, nil
	}
	entries, err := hubdoc.Entries(ctx, opts...)
	if err != nil {
		return errResult(err), listHubsOutput{}, nil
	}

	var matched []*builder.Entry
	for _, e := range entries {
		if matchGlobName(e.Tag, input.Hub) {
			matched = append(matched, e)
		}
	}

	output := listHubsOutput{Document: document}

	if input.Detail || input.GroupBy != "" {
		output.Total = len(entries)
		output.Matched = len(matched)
		if input.GroupBy != "" {
			output.Groups = groupAndSort(matched, func(e *builder.Entry) []string {
				if strings.EqualFold(input.GroupBy, "verb") {
					return []string{string(e.Kind)}
				}
				return []string{e.Tag}
			})
			output.Returned = len(output.Groups)
			return nil, output, nil
		}

		page := paginate(matched, input.Offset, detailLimit(input.Limit))
		output.Operations = makeSlice[operationSummary](len(page))
		for _, e := range page {
			output.Operations = append(output.Operations, summarizeEntry(e))
		}
		output.Returned = len(output.Operations)
		return nil, output, nil
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Hub.Key()]++
	}
	var summaries []hubSummary
	for _, h := range hubs {
		name := builder.HubName(h.Name)
		if !matchGlobName(name, input.Hub) {
			continue
		}
		summaries = append(summaries, hubSummary{
			Name:       name,
			Type:       h.Key(),
			Path:       h.Hub.Path,
			Discovery:  string(h.Hub.Discovery),
			Documents:  h.Hub.Documents,
			Hidden:     h.Hidden,
			InDocument: !h.Hidden && h.Hub.InDocument(document),
			Operations: counts[h.Key()],
		})
	}
	output.Total = len(hubs)
	output.Matched = len(summaries)
	output.Hubs = paginate(summaries, input.Offset, input.Limit)
	output.Returned = len(output.Hubs)
	return nil, output, nil
}

func summarizeEntry(e *builder.Entry) operationSummary {
	s := operationSummary{
		Hub:     e.Tag,
		Method:  e.Method.Name,
		Verb:    string(e.Kind),
		Path:    e.Path,
		Summary: e.Operation.Summary,
	}
	s.Parameters = makeSlice[string](len(e.Operation.Parameters))
	for _, p := range e.Operation.Parameters {
		s.Parameters = append(s.Parameters, p.Name)
	}
	return s
}
