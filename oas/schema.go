package oas

import "strings"

// SchemaRefPrefix is the JSON pointer prefix of component schema references.
const SchemaRefPrefix = "#/components/schemas/"

// Schema is the subset of JSON Schema that hubdoc generates from Go types.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	Maximum   *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	Minimum   *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`

	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// RefSchema returns a schema that only points at the named component.
func RefSchema(name string) *Schema {
	return &Schema{Ref: SchemaRefPrefix + name}
}

// IsRef reports whether s is a component reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// RefName returns the component name s points at, or "" when s is not a
// component reference.
func (s *Schema) RefName() string {
	if s == nil {
		return ""
	}
	name, ok := strings.CutPrefix(s.Ref, SchemaRefPrefix)
	if !ok {
		return ""
	}
	return name
}
