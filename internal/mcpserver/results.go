package mcpserver

import (
	"cmp"
	"fmt"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// paginate returns items[offset:offset+limit]. A non-positive limit means
// cfg.ListLimit and no page is larger than cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	limit = min(limit, cfg.MaxLimit)
	if offset < 0 || offset >= len(items) {
		return nil
	}
	return items[offset : offset+min(limit, len(items)-offset)]
}

// detailLimit is the limit used when a tool returns one entry per operation.
func detailLimit(limit int) int {
	if limit > 0 {
		return limit
	}
	return cfg.ListDetailLimit
}

// makeSlice keeps empty results nil so omitempty drops them.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// absPath matches absolute paths under common roots.
var absPath = regexp.MustCompile(`/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[\w./-]*`)

// sanitizeError hides local filesystem layout from clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return absPath.ReplaceAllLiteralString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// documentName falls back to the configured default document.
func documentName(name string) string {
	return cmp.Or(name, cfg.Document)
}

type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort counts items per key, largest group first, ties by key.
func groupAndSort[T any](items []T, keys func(T) []string) []groupCount {
	counts := map[string]int{}
	for _, item := range items {
		for _, k := range keys(item) {
			counts[k]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		groups = append(groups, groupCount{Key: k, Count: counts[k]})
	}
	slices.SortStableFunc(groups, func(a, b groupCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return groups
}

func validateGroupBy(groupBy string, detail bool, allowed []string) error {
	switch {
	case groupBy == "":
		return nil
	case detail:
		return fmt.Errorf("cannot use both group_by and detail")
	case slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, groupBy) }):
		return nil
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// validateGlobPattern rejects malformed hub filters before any matching.
func validateGlobPattern(pattern string) error {
	if !isGlob(pattern) {
		return nil
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlobName matches a hub name against a filter. Plain names compare
// case-insensitively and an empty filter matches everything.
func matchGlobName(name, pattern string) bool {
	switch {
	case pattern == "":
		return true
	case !isGlob(pattern):
		return strings.EqualFold(name, pattern)
	}
	ok, _ := path.Match(pattern, name)
	return ok
}
