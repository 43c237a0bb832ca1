package oas

import (
	"fmt"
	"strings"
)

// OperationKind is the verb an operation is registered under in a PathItem.
type OperationKind string

const (
	// OperationGet is the get verb.
	OperationGet OperationKind = "get"
	// OperationPut is the put verb.
	OperationPut OperationKind = "put"
	// OperationPost is the post verb.
	OperationPost OperationKind = "post"
	// OperationDelete is the delete verb.
	OperationDelete OperationKind = "delete"
	// OperationOptions is the options verb.
	OperationOptions OperationKind = "options"
	// OperationHead is the head verb.
	OperationHead OperationKind = "head"
	// OperationPatch is the patch verb.
	OperationPatch OperationKind = "patch"
	// OperationTrace is the trace verb.
	OperationTrace OperationKind = "trace"
)

// OperationKinds lists the supported verbs in PathItem field order.
var OperationKinds = []OperationKind{
	OperationGet, OperationPut, OperationPost, OperationDelete,
	OperationOptions, OperationHead, OperationPatch, OperationTrace,
}

// ParseOperationKind normalizes s to a supported OperationKind.
// Matching is case-insensitive.
func ParseOperationKind(s string) (OperationKind, error) {
	k := OperationKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range OperationKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unsupported operation kind %q", s)
}

// Location is where a parameter is carried.
type Location string

// LocationQuery is the only location hubdoc emits.
const LocationQuery Location = "query"

// PathItem describes the operations available on a single path.
type PathItem struct {
	Summary     string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// Operation describes a single invokable hub method.
type Operation struct {
	Tags        []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string   `yaml:"name" json:"name"`
	In          Location `yaml:"in" json:"in"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema  `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// SetOperation stores op under kind. It returns an error for unknown kinds.
func (p *PathItem) SetOperation(kind OperationKind, op *Operation) error {
	switch kind {
	case OperationGet:
		p.Get = op
	case OperationPut:
		p.Put = op
	case OperationPost:
		p.Post = op
	case OperationDelete:
		p.Delete = op
	case OperationOptions:
		p.Options = op
	case OperationHead:
		p.Head = op
	case OperationPatch:
		p.Patch = op
	case OperationTrace:
		p.Trace = op
	default:
		return fmt.Errorf("unsupported operation kind %q", kind)
	}
	return nil
}

// Operations returns the non-nil operations keyed by verb.
func (p *PathItem) Operations() map[OperationKind]*Operation {
	ops := make(map[OperationKind]*Operation)
	for kind, op := range map[OperationKind]*Operation{
		OperationGet:     p.Get,
		OperationPut:     p.Put,
		OperationPost:    p.Post,
		OperationDelete:  p.Delete,
		OperationOptions: p.Options,
		OperationHead:    p.Head,
		OperationPatch:   p.Patch,
		OperationTrace:   p.Trace,
	} {
		if op != nil {
			ops[kind] = op
		}
	}
	return ops
}
