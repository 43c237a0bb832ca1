package schema

import (
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/hubdoc/oas"
)

// parseJSONTag parses a struct field's json tag.
// Returns the field name and options (like "omitempty").
func parseJSONTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	return parts[0], parts[1:]
}

// parseOASTag parses the oas struct tag into a map of key-value pairs.
// Supports formats like: oas:"description=User ID,minLength=1,maxLength=100"
// A key without a value is a boolean flag set to "true".
func parseOASTag(tag string) map[string]string {
	result := make(map[string]string)
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if key, value, ok := strings.Cut(part, "="); ok && key != "" {
			result[strings.TrimSpace(key)] = strings.TrimSpace(value)
		} else {
			result[part] = "true"
		}
	}
	return result
}

// isFieldRequired applies, in order: an explicit oas required flag, pointer
// optionality, then json omitempty.
func isFieldRequired(isPointer bool, jsonOpts []string, oasOpts map[string]string) bool {
	if v, ok := oasOpts["required"]; ok {
		return v == "true"
	}
	if isPointer {
		return false
	}
	return !slices.Contains(jsonOpts, "omitempty")
}

// applyOASTag returns a copy of s with the tag's options applied.
// Values that fail to parse are ignored.
func applyOASTag(s *oas.Schema, opts map[string]string) *oas.Schema {
	if len(opts) == 0 {
		return s
	}
	out := *s
	for key, value := range opts {
		switch key {
		case "description":
			out.Description = value
		case "format":
			out.Format = value
		case "pattern":
			out.Pattern = value
		case "deprecated":
			out.Deprecated = value == "true"
		case "enum":
			values := strings.Split(value, "|")
			out.Enum = make([]any, len(values))
			for i, v := range values {
				out.Enum[i] = strings.TrimSpace(v)
			}
		case "minimum":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				out.Minimum = &f
			}
		case "maximum":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				out.Maximum = &f
			}
		case "minLength":
			if n, err := strconv.Atoi(value); err == nil {
				out.MinLength = &n
			}
		case "maxLength":
			if n, err := strconv.Atoi(value); err == nil {
				out.MaxLength = &n
			}
		}
	}
	return &out
}

func lookupTag(tag, key string) string {
	return reflect.StructTag(tag).Get(key)
}
