package builder

import (
	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/oas"
)

// operationKind returns the method's verb, or the builder default.
func (b *Builder) operationKind(t *hub.Type, m *hub.Method) (oas.OperationKind, error) {
	if m.Descriptor == nil || m.Descriptor.Verb == "" {
		return b.defaultKind, nil
	}
	kind, err := oas.ParseOperationKind(string(m.Descriptor.Verb))
	if err != nil {
		return "", NewInvalidVerbError(t.Key(), m.Name, string(m.Descriptor.Verb), err)
	}
	return kind, nil
}

func newOperation(tag string, m *hub.Method, params []*oas.Parameter) *oas.Operation {
	op := &oas.Operation{
		Tags:       []string{tag},
		Parameters: params,
	}
	if d := m.Descriptor; d != nil {
		op.Summary = d.Summary
		op.Description = d.Description
	}
	return op
}

// insert wraps the entry's operation in a new path item and adds it to doc.
// The document's duplicate path error is returned unchanged.
func insert(doc *oas.Document, e *Entry) error {
	item := &oas.PathItem{}
	if err := item.SetOperation(e.Kind, e.Operation); err != nil {
		return err
	}
	if err := doc.AddPath(e.Path, item); err != nil {
		return err
	}
	doc.AddTag(e.Tag)
	return nil
}
