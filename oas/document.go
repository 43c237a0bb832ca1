package oas

import (
	"fmt"
	"sort"

	"github.com/erraggy/hubdoc/oaserrors"
)

// DefaultOpenAPIVersion is the OpenAPI version written by NewDocument.
const DefaultOpenAPIVersion = "3.0.3"

// Document is an OpenAPI 3.x document built by hubdoc.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info" json:"info"`
	Tags       []*Tag      `yaml:"tags,omitempty" json:"tags,omitempty"`
	Paths      Paths       `yaml:"paths" json:"paths"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Components holds reusable schema definitions.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// Paths maps a synthesized path string to its path item.
type Paths map[string]*PathItem

// Keys returns the path keys in sorted order.
func (p Paths) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DuplicatePathError reports an insertion under a path key that is already
// present in the document.
type DuplicatePathError struct {
	// Path is the colliding path key
	Path string
}

// Error returns a human-readable error message.
func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate path %q: an entry with this key already exists", e.Path)
}

// Is reports whether target matches this error type.
func (e *DuplicatePathError) Is(target error) bool {
	return target == oaserrors.ErrDuplicatePath
}

// NewDocument creates an empty document with the given title and version.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI: DefaultOpenAPIVersion,
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths: make(Paths),
	}
}

// AddPath inserts item under path. The store is insert-only: when path is
// already present the document is left untouched and a *DuplicatePathError
// is returned.
func (d *Document) AddPath(path string, item *PathItem) error {
	if d.Paths == nil {
		d.Paths = make(Paths)
	}
	if _, exists := d.Paths[path]; exists {
		return &DuplicatePathError{Path: path}
	}
	d.Paths[path] = item
	return nil
}

// AddTag records a tag once, keeping first-seen order.
func (d *Document) AddTag(name string) {
	for _, t := range d.Tags {
		if t.Name == name {
			return
		}
	}
	d.Tags = append(d.Tags, &Tag{Name: name})
}

// AddSchemas copies schemas into the document's components, keeping any
// entry that is already present.
func (d *Document) AddSchemas(schemas map[string]*Schema) {
	if len(schemas) == 0 {
		return
	}
	if d.Components == nil {
		d.Components = &Components{}
	}
	if d.Components.Schemas == nil {
		d.Components.Schemas = make(map[string]*Schema, len(schemas))
	}
	for name, s := range schemas {
		if _, ok := d.Components.Schemas[name]; !ok {
			d.Components.Schemas[name] = s
		}
	}
}
