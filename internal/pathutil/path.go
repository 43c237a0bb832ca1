package pathutil

import "regexp"

// PathParamRegex matches a "{name}" placeholder and captures the name.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// TemplateParams returns the placeholder names left in path, in order.
func TemplateParams(path string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m[1]
	}
	return names
}
