package builder

import "github.com/erraggy/hubdoc/hub"

// scan returns the hub types to document in documentName, in module order
// then declaration order. Each type identity is returned at most once.
func (b *Builder) scan(documentName string) []*hub.Type {
	seen := make(map[string]bool)
	var out []*hub.Type
	for _, m := range b.modules {
		for _, t := range m.Types() {
			if t == nil || t.Hub == nil || t.Hidden {
				continue
			}
			key := t.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			if !t.Hub.InDocument(documentName) {
				b.logger.Debug("skipping hub not in document", "hub", key, "document", documentName)
				continue
			}
			out = append(out, t)
		}
	}
	return out
}
