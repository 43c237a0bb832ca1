package builder

import (
	"go/types"

	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
)

// SchemaRegistry is the schema capability the builder needs. Lookup
// reports a component already registered for a type; Generate materializes
// a schema and registers whatever components it needs.
type SchemaRegistry interface {
	Lookup(t types.Type) (string, bool)
	Generate(t types.Type) *oas.Schema
}

// Builder documents the hubs found in a fixed set of modules.
type Builder struct {
	modules     []hub.Module
	defaultKind oas.OperationKind
	logger      oas.Logger
}

// Entry is one documented hub method, ready to be inserted into a document.
type Entry struct {
	// Hub is the hub type the method belongs to.
	Hub *hub.Type
	// Method is the resolved method.
	Method *hub.Method
	// Tag is the derived hub name.
	Tag string
	// Path is the final path key.
	Path string
	// Kind is the operation verb.
	Kind oas.OperationKind
	// Operation is the assembled operation.
	Operation *oas.Operation
}

// New creates a Builder over modules. Modules with the same Path are kept
// once, first occurrence wins. At least one module is required.
func New(modules []hub.Module, opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	seen := make(map[string]bool, len(modules))
	unique := make([]hub.Module, 0, len(modules))
	for _, m := range modules {
		if m == nil || seen[m.Path()] {
			continue
		}
		seen[m.Path()] = true
		unique = append(unique, m)
	}
	if len(unique) == 0 {
		return nil, &oaserrors.PreconditionError{Input: "modules", Message: "at least one module is required"}
	}

	return &Builder{
		modules:     unique,
		defaultKind: cfg.defaultKind,
		logger:      cfg.logger,
	}, nil
}

// Modules returns the de-duplicated modules the builder scans.
func (b *Builder) Modules() []hub.Module {
	return b.modules
}

// Entries runs scan, resolution, path synthesis and parameter mapping for
// documentName without touching any document. Schemas for parameter types
// are registered in reg as a side effect.
func (b *Builder) Entries(reg SchemaRegistry, documentName string) ([]*Entry, error) {
	if reg == nil {
		return nil, &oaserrors.PreconditionError{Input: "registry", Message: "a schema registry is required"}
	}

	var entries []*Entry
	for _, t := range b.scan(documentName) {
		tag := HubName(t.Name)
		base := HubPath(t.Hub.Path, tag)
		log := b.logger.With("hub", t.Key())

		methods, err := resolveMethods(t)
		if err != nil {
			return nil, err
		}
		for _, m := range methods {
			params, err := resolveArgs(t, m)
			if err != nil {
				return nil, err
			}
			kind, err := b.operationKind(t, m)
			if err != nil {
				return nil, err
			}
			e := &Entry{
				Hub:       t,
				Method:    m,
				Tag:       tag,
				Path:      MethodPath(base, m.Name, m.Descriptor),
				Kind:      kind,
				Operation: newOperation(tag, m, mapParameters(reg, params)),
			}
			log.Debug("resolved method", "method", m.Name, "path", e.Path, "verb", kind, "params", len(params))
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Apply runs one pass for documentName and inserts a path entry per
// documented method into doc. The first error aborts the pass.
func (b *Builder) Apply(doc *oas.Document, reg SchemaRegistry, documentName string) error {
	if doc == nil {
		return &oaserrors.PreconditionError{Input: "document", Message: "a document is required"}
	}
	entries, err := b.Entries(reg, documentName)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := insert(doc, e); err != nil {
			return err
		}
		b.logger.Debug("added path", "path", e.Path, "verb", e.Kind, "tag", e.Tag)
	}
	return nil
}
