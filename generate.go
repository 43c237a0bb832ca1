package hubdoc

import (
	"context"

	"github.com/erraggy/hubdoc/builder"
	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/loader"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/schema"
	"github.com/erraggy/hubdoc/validator"
)

// pass holds everything one generation needs.
type pass struct {
	cfg      *config
	builder  *builder.Builder
	registry *schema.Registry
}

func newPass(ctx context.Context, opts ...Option) (*pass, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	modules := cfg.modules
	if len(modules) == 0 {
		modules, err = loader.Load(ctx, loader.Config{
			Dir:        cfg.dir,
			BuildFlags: cfg.buildFlags,
			Logger:     cfg.logger,
		}, cfg.patterns...)
		if err != nil {
			return nil, err
		}
	}

	bopts := []builder.Option{builder.WithLogger(cfg.logger)}
	if cfg.defaultVerb != "" {
		bopts = append(bopts, builder.WithDefaultOperationKind(cfg.defaultVerb))
	}
	b, err := builder.New(modules, bopts...)
	if err != nil {
		return nil, err
	}

	sopts := []schema.Option{schema.WithNaming(cfg.naming), schema.WithLogger(cfg.logger)}
	if cfg.nameTemplate != "" {
		sopts = append(sopts, schema.WithNameTemplate(cfg.nameTemplate))
	}
	reg, err := schema.NewRegistry(sopts...)
	if err != nil {
		return nil, err
	}

	return &pass{cfg: cfg, builder: b, registry: reg}, nil
}

// Generate loads hub modules and builds one document for the configured
// document name. Registered schemas are copied into components.
//
// With WithValidation the document is validated afterwards; findings are
// returned as an error together with the document.
func Generate(ctx context.Context, opts ...Option) (*oas.Document, error) {
	p, err := newPass(ctx, opts...)
	if err != nil {
		return nil, err
	}
	cfg := p.cfg

	doc := oas.NewDocument(cfg.title, cfg.version)
	doc.Info.Description = cfg.description
	if cfg.openAPIVersion != "" {
		doc.OpenAPI = cfg.openAPIVersion
	}

	if err := p.builder.Apply(doc, p.registry, cfg.documentName); err != nil {
		return nil, err
	}
	doc.AddSchemas(p.registry.Components())
	cfg.logger.Info("generated document",
		"document", cfg.documentName,
		"paths", len(doc.Paths),
		"schemas", len(p.registry.Names()))

	if !cfg.validate {
		return doc, nil
	}
	result, err := validator.Validate(doc,
		validator.WithStrictMode(cfg.strict),
		validator.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	return doc, result.Err()
}

// Entries runs a pass without assembling a document and returns the
// documented methods. It is a dry run of Generate.
func Entries(ctx context.Context, opts ...Option) ([]*builder.Entry, error) {
	p, err := newPass(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return p.builder.Entries(p.registry, p.cfg.documentName)
}

// Hubs loads modules and returns every type carrying a hub descriptor,
// hidden or not, regardless of document membership.
func Hubs(ctx context.Context, opts ...Option) ([]*hub.Type, error) {
	p, err := newPass(ctx, opts...)
	if err != nil {
		return nil, err
	}
	var out []*hub.Type
	for _, m := range p.builder.Modules() {
		for _, t := range m.Types() {
			if t.Hub != nil {
				out = append(out, t)
			}
		}
	}
	return out, nil
}
