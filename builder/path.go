package builder

import (
	"strings"

	"github.com/erraggy/hubdoc/hub"
)

// HubName derives a hub's name from its type name. Interface-style names
// lose the leading I and then one trailing Hub suffix, so IChatHub becomes
// Chat. The suffix is kept when nothing would remain, so IHub becomes Hub.
// Any other name is returned unchanged, so ChatHub stays ChatHub.
func HubName(typeName string) string {
	if len(typeName) <= 1 || typeName[0] != 'I' {
		return typeName
	}
	name := typeName[1:]
	if trimmed, ok := strings.CutSuffix(name, "Hub"); ok && trimmed != "" {
		return trimmed
	}
	return name
}

// HubPath substitutes every {hubName} in template with name.
func HubPath(template, name string) string {
	return strings.ReplaceAll(template, hub.HubNamePlaceholder, name)
}

// MethodPath appends the method segment to base. Without a descriptor or
// name template the segment is the method name; otherwise every
// {methodName} in the template is replaced with it.
func MethodPath(base, methodName string, d *hub.MethodDescriptor) string {
	segment := methodName
	if d != nil && d.Name != "" {
		segment = strings.ReplaceAll(d.Name, hub.MethodNamePlaceholder, methodName)
	}
	return base + "/" + segment
}
