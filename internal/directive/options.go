package directive

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOptions parses a list of key:"value" pairs separated by spaces, the
// syntax of Go struct tags. Unlike reflect.StructTag it reports malformed
// input and duplicate keys instead of ignoring them.
func ParseOptions(s string) (map[string]string, error) {
	opts := make(map[string]string)
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return opts, nil
		}

		i := 0
		for i < len(s) && s[i] > ' ' && s[i] != ':' && s[i] != '"' && s[i] != 0x7f {
			i++
		}
		if i == 0 {
			return nil, fmt.Errorf("malformed option list at %q", s)
		}
		if i+1 >= len(s) || s[i] != ':' || s[i+1] != '"' {
			return nil, fmt.Errorf("malformed option %q: want key:\"value\"", s[:i])
		}
		key := s[:i]
		s = s[i+1:]

		// Scan the quoted value.
		i = 1
		for i < len(s) && s[i] != '"' {
			if s[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(s) {
			return nil, fmt.Errorf("unterminated value for option %q", key)
		}
		value, err := strconv.Unquote(s[:i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid value for option %q: %w", key, err)
		}
		s = s[i+1:]
		if s != "" && s[0] != ' ' && s[0] != '\t' {
			return nil, fmt.Errorf("missing space after option %q", key)
		}

		if _, dup := opts[key]; dup {
			return nil, fmt.Errorf("duplicate option %q", key)
		}
		opts[key] = value
	}
}

// SplitList splits a comma separated option value, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
