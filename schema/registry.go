package schema

import (
	"go/types"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/hubdoc/oas"
)

// Registry generates schemas from Go types and stores the named components
// it creates. It is not safe for concurrent use.
type Registry struct {
	namer   *namer
	cache   *cache
	schemas map[string]*oas.Schema
	logger  oas.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := &config{logger: oas.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	n, err := newNamer(cfg.naming, cfg.template)
	if err != nil {
		return nil, err
	}
	return &Registry{
		namer:   n,
		cache:   newCache(),
		schemas: make(map[string]*oas.Schema),
		logger:  cfg.logger,
	}, nil
}

// Lookup returns the component name registered for t. Pointers are
// followed, so *T resolves to the component of T.
func (r *Registry) Lookup(t types.Type) (string, bool) {
	return r.cache.name(deref(t))
}

// Generate returns the schema for t, registering components for any named
// structs reachable from it. A named struct yields a $ref to its component.
func (r *Registry) Generate(t types.Type) *oas.Schema {
	return r.generate(t)
}

// Components returns a copy of the registered component schemas.
func (r *Registry) Components() map[string]*oas.Schema {
	return maps.Clone(r.schemas)
}

// Names returns the registered component names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.schemas))
}

func deref(t types.Type) types.Type {
	for {
		p, ok := types.Unalias(t).(*types.Pointer)
		if !ok {
			return types.Unalias(t)
		}
		t = p.Elem()
	}
}

func (r *Registry) generate(t types.Type) *oas.Schema {
	isPointer := false
	t = types.Unalias(t)
	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			break
		}
		t = types.Unalias(p.Elem())
		isPointer = true
	}

	if s := specialSchema(t); s != nil {
		s.Nullable = isPointer
		return s
	}
	if name, ok := r.cache.name(t); ok {
		return oas.RefSchema(name)
	}
	if name, ok := r.cache.pending(t); ok {
		return oas.RefSchema(name)
	}

	var s *oas.Schema
	switch u := t.Underlying().(type) {
	case *types.Struct:
		named, ok := t.(*types.Named)
		if !ok {
			s = r.structSchema(u)
			break
		}
		return r.component(named, u)
	case *types.Slice:
		if b, ok := types.Unalias(u.Elem()).Underlying().(*types.Basic); ok && b.Kind() == types.Byte {
			s = &oas.Schema{Type: "string", Format: "byte"}
			break
		}
		s = &oas.Schema{Type: "array", Items: r.generate(u.Elem())}
	case *types.Array:
		s = &oas.Schema{Type: "array", Items: r.generate(u.Elem())}
	case *types.Map:
		s = &oas.Schema{Type: "object", AdditionalProperties: r.generate(u.Elem())}
	case *types.Basic:
		s = basicSchema(u)
	case *types.Pointer:
		s = r.generate(u)
	case *types.Interface:
		r.logger.Debug("interface type, using empty schema", "type", t.String())
		s = &oas.Schema{}
	default:
		r.logger.Warn("unsupported type, using empty schema", "type", t.String())
		s = &oas.Schema{}
	}

	if isPointer {
		s.Nullable = true
	}
	return s
}

// component registers a named struct and returns a reference to it.
func (r *Registry) component(named *types.Named, st *types.Struct) *oas.Schema {
	name := r.namer.nameFor(named, func(n string) bool {
		return r.cache.taken(n, named)
	})

	r.cache.markInProgress(named, name)
	s := r.structSchema(st)
	r.cache.clearInProgress(named)

	r.schemas[name] = s
	r.cache.set(named, name)
	r.logger.Debug("registered schema component", "name", name, "type", named.String())
	return oas.RefSchema(name)
}

func (r *Registry) structSchema(st *types.Struct) *oas.Schema {
	properties := make(map[string]*oas.Schema)
	var required []string

	for i := range st.NumFields() {
		field := st.Field(i)
		tag := st.Tag(i)
		if !field.Exported() {
			continue
		}

		jsonTag := lookupTag(tag, "json")
		if jsonTag == "-" {
			continue
		}
		name, jsonOpts := parseJSONTag(jsonTag)

		if field.Embedded() && name == "" {
			embedded := r.generate(field.Type())
			if ref := embedded.RefName(); ref != "" {
				embedded = r.schemas[ref]
			}
			if embedded == nil {
				continue
			}
			for propName, propSchema := range embedded.Properties {
				if _, exists := properties[propName]; !exists {
					properties[propName] = propSchema
				}
			}
			for _, req := range embedded.Required {
				if !slices.Contains(required, req) {
					required = append(required, req)
				}
			}
			continue
		}

		if name == "" {
			name = field.Name()
		}
		oasOpts := parseOASTag(lookupTag(tag, "oas"))
		properties[name] = applyOASTag(r.generate(field.Type()), oasOpts)

		_, isPointer := types.Unalias(field.Type()).(*types.Pointer)
		if isFieldRequired(isPointer, jsonOpts, oasOpts) {
			required = append(required, name)
		}
	}

	return &oas.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// specialSchema handles well-known named types that serialize as scalars.
func specialSchema(t types.Type) *oas.Schema {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return nil
	}
	pkg, name := named.Obj().Pkg().Path(), named.Obj().Name()
	switch {
	case pkg == "time" && name == "Time":
		return &oas.Schema{Type: "string", Format: "date-time"}
	case pkg == "time" && name == "Duration":
		return &oas.Schema{Type: "integer", Format: "int64"}
	case name == "UUID" && strings.HasSuffix(pkg, "uuid"):
		return &oas.Schema{Type: "string", Format: "uuid"}
	}
	return nil
}

func basicSchema(b *types.Basic) *oas.Schema {
	switch b.Kind() {
	case types.String, types.UntypedString:
		return &oas.Schema{Type: "string"}
	case types.Bool, types.UntypedBool:
		return &oas.Schema{Type: "boolean"}
	case types.Int, types.Int8, types.Int16, types.Int32,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.UntypedInt, types.UntypedRune:
		return &oas.Schema{Type: "integer", Format: "int32"}
	case types.Int64, types.Uint64, types.Uintptr:
		return &oas.Schema{Type: "integer", Format: "int64"}
	case types.Float32:
		return &oas.Schema{Type: "number", Format: "float"}
	case types.Float64, types.UntypedFloat:
		return &oas.Schema{Type: "number", Format: "double"}
	default:
		return &oas.Schema{}
	}
}
