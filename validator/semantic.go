package validator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/hubdoc/internal/pathutil"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
)

type checker struct {
	doc        *oas.Document
	components map[string]*oas.Schema
	tags       map[string]bool
	usedTags   map[string]bool
	refs       map[string]bool
	path       *pathutil.PathBuilder
	findings   []*oaserrors.ValidationError
}

func newChecker(doc *oas.Document) *checker {
	c := &checker{
		doc:        doc,
		components: map[string]*oas.Schema{},
		tags:       map[string]bool{},
		usedTags:   map[string]bool{},
		refs:       map[string]bool{},
		path:       pathutil.Get(),
	}
	if doc.Components != nil && doc.Components.Schemas != nil {
		c.components = doc.Components.Schemas
	}
	for _, t := range doc.Tags {
		if t != nil {
			c.tags[t.Name] = true
		}
	}
	return c
}

func (c *checker) add(field string, value any, format string, args ...any) {
	c.findings = append(c.findings, &oaserrors.ValidationError{
		Path:    c.path.String(),
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) run() {
	c.path.Push("paths")
	for _, key := range c.doc.Paths.Keys() {
		c.path.Push(key)
		c.pathItem(key, c.doc.Paths[key])
		c.path.Pop()
	}
	c.path.Pop()

	c.path.Push("components")
	c.path.Push("schemas")
	for _, name := range slices.Sorted(maps.Keys(c.components)) {
		c.path.Push(name)
		c.schema(c.components[name], 0)
		c.path.Pop()
	}
	c.path.Pop()
	c.path.Pop()
}

func (c *checker) pathItem(key string, item *oas.PathItem) {
	for _, name := range pathutil.TemplateParams(key) {
		c.add("", name, "path template {%s} was not substituted", name)
	}
	if item == nil {
		c.add("", nil, "path item must not be empty")
		return
	}
	ops := item.Operations()
	var count int
	for _, kind := range oas.OperationKinds {
		op := ops[kind]
		if op == nil {
			continue
		}
		count++
		c.path.Push(string(kind))
		c.operation(op)
		c.path.Pop()
	}
	if count != 1 {
		c.add("", count, "path item must hold exactly one operation (found %d)", count)
	}
}

func (c *checker) operation(op *oas.Operation) {
	switch len(op.Tags) {
	case 1:
		tag := op.Tags[0]
		c.usedTags[tag] = true
		if !c.tags[tag] {
			c.add("tags", tag, "tag %q is not declared in tags", tag)
		}
	default:
		c.add("tags", len(op.Tags), "operation must have exactly one tag (found %d)", len(op.Tags))
	}

	seen := make(map[string]bool, len(op.Parameters))
	c.path.Push("parameters")
	defer c.path.Pop()
	for i, p := range op.Parameters {
		c.path.PushIndex(i)
		c.parameter(p, seen)
		c.path.Pop()
	}
}

func (c *checker) parameter(p *oas.Parameter, seen map[string]bool) {
	if p == nil {
		c.add("", nil, "parameter must not be empty")
		return
	}
	if p.In != oas.LocationQuery {
		c.add("in", string(p.In), "hub parameters must be query parameters")
	}
	if seen[p.Name] {
		c.add("name", p.Name, "duplicate parameter name %q", p.Name)
	}
	seen[p.Name] = true
	if p.Schema == nil {
		c.add("schema", nil, "parameter must have a schema")
		return
	}
	c.path.Push("schema")
	c.schema(p.Schema, 0)
	c.path.Pop()
}

func (c *checker) schema(s *oas.Schema, depth int) {
	if s == nil {
		return
	}
	if depth > maxSchemaNestingDepth {
		c.add("", depth, "schema nesting depth (%d) exceeds maximum allowed (%d)", depth, maxSchemaNestingDepth)
		return
	}
	if s.Ref != "" {
		name := s.RefName()
		switch {
		case name == "":
			c.add("$ref", s.Ref, "reference must point into components.schemas")
		case c.components[name] == nil:
			c.add("$ref", s.Ref, "unresolved reference %q", name)
		default:
			c.refs[name] = true
		}
		return
	}

	if s.Type == "array" && s.Items == nil {
		c.add("items", nil, "array schema must have 'items' defined")
	}
	if s.MinLength != nil && s.MaxLength != nil && *s.MinLength > *s.MaxLength {
		c.add("minLength", *s.MinLength, "minLength (%d) cannot be greater than maxLength (%d)", *s.MinLength, *s.MaxLength)
	}
	if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
		c.add("minimum", *s.Minimum, "minimum (%v) cannot be greater than maximum (%v)", *s.Minimum, *s.Maximum)
	}
	for _, req := range s.Required {
		if _, ok := s.Properties[req]; !ok {
			c.add("required", req, "required field %q not found in properties", req)
		}
	}

	c.path.Push("properties")
	for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
		c.path.Push(name)
		c.schema(s.Properties[name], depth+1)
		c.path.Pop()
	}
	c.path.Pop()
	c.child("additionalProperties", s.AdditionalProperties, depth+1)
	c.child("items", s.Items, depth+1)
}

func (c *checker) child(segment string, s *oas.Schema, depth int) {
	if s == nil {
		return
	}
	c.path.Push(segment)
	c.schema(s, depth)
	c.path.Pop()
}

// strict reports components nothing references and tags no operation uses.
func (c *checker) strict() {
	c.path.Push("components")
	c.path.Push("schemas")
	for _, name := range slices.Sorted(maps.Keys(c.components)) {
		if !c.refs[name] {
			c.path.Push(name)
			c.add("", nil, "component is never referenced")
			c.path.Pop()
		}
	}
	c.path.Pop()
	c.path.Pop()

	c.path.Push("tags")
	for i, t := range c.doc.Tags {
		if t != nil && !c.usedTags[t.Name] {
			c.path.PushIndex(i)
			c.add("name", t.Name, "tag %q is not used by any operation", t.Name)
			c.path.Pop()
		}
	}
	c.path.Pop()
}
