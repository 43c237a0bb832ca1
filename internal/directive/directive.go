// Package directive parses hubdoc directives from Go doc comments.
//
// Directives are line comments in the form:
//
//	//hubdoc:hub [key:"value" ...]
//	//hubdoc:method [key:"value" ...]
//	//hubdoc:arg <param> [key:"value" ...]
//	//hubdoc:hidden [param]
//
// Options use Go struct tag syntax. Each kind accepts a fixed set of keys;
// anything else is an error.
package directive

import (
	"fmt"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// Prefix starts every hubdoc directive.
const Prefix = "//hubdoc:"

// Kind represents the type of directive.
type Kind string

const (
	KindHub    Kind = "hub"
	KindMethod Kind = "method"
	KindArg    Kind = "arg"
	KindHidden Kind = "hidden"
)

// Option keys.
const (
	KeyPath        = "path"
	KeyDocuments   = "documents"
	KeyDiscovery   = "discovery"
	KeyName        = "name"
	KeyVerb        = "verb"
	KeySummary     = "summary"
	KeyDescription = "description"
	KeyArgs        = "args"
)

var allowedKeys = map[Kind][]string{
	KindHub:    {KeyPath, KeyDocuments, KeyDiscovery},
	KindMethod: {KeyName, KeyVerb, KeySummary, KeyDescription, KeyArgs},
	KindArg:    {KeyDescription},
	KindHidden: nil,
}

// Directive is one parsed //hubdoc: line.
type Directive struct {
	Kind Kind
	// Target is the parameter name of arg and parameter-level hidden
	// directives. It is empty otherwise.
	Target string
	// Options holds the key:"value" pairs.
	Options map[string]string
	// Pos is the source location of the directive.
	Pos token.Position
}

// Option returns the value for key and whether it was set.
func (d Directive) Option(key string) (string, bool) {
	v, ok := d.Options[key]
	return v, ok
}

// Error is a malformed directive.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// ParseLine parses a single comment. ok is false when text is not a hubdoc
// directive.
func ParseLine(text string, pos token.Position) (d Directive, ok bool, err error) {
	rest, found := strings.CutPrefix(text, Prefix)
	if !found {
		return Directive{}, false, nil
	}

	name, rest := cutField(rest)
	kind := Kind(name)
	keys, known := allowedKeys[kind]
	if !known {
		return Directive{}, true, &Error{Pos: pos, Message: fmt.Sprintf("unknown directive %s%s", Prefix, name)}
	}

	d = Directive{Kind: kind, Pos: pos}
	rest = strings.TrimSpace(rest)

	switch kind {
	case KindArg:
		target, opts := cutField(rest)
		if target == "" || strings.Contains(target, ":") {
			return Directive{}, true, &Error{Pos: pos, Message: Prefix + "arg requires a parameter name"}
		}
		d.Target = target
		rest = strings.TrimSpace(opts)
	case KindHidden:
		if strings.ContainsAny(rest, " \t:\"") {
			return Directive{}, true, &Error{Pos: pos, Message: Prefix + "hidden takes at most one parameter name"}
		}
		d.Target = rest
		return d, true, nil
	}

	opts, err := ParseOptions(rest)
	if err != nil {
		return Directive{}, true, &Error{Pos: pos, Message: err.Error()}
	}
	for key := range opts {
		if !slices.Contains(keys, key) {
			return Directive{}, true, &Error{
				Pos:     pos,
				Message: fmt.Sprintf("unknown option %q for %s%s (allowed: %s)", key, Prefix, kind, strings.Join(keys, ", ")),
			}
		}
	}
	d.Options = opts
	return d, true, nil
}

// cutField splits s at the first space or tab.
func cutField(s string) (field, rest string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// ParseComments returns the directives in a doc comment group, in source
// order. A nil group has no directives.
func ParseComments(fset *token.FileSet, cg *ast.CommentGroup) ([]Directive, error) {
	if cg == nil {
		return nil, nil
	}
	var out []Directive
	for _, c := range cg.List {
		d, ok, err := ParseLine(c.Text, fset.Position(c.Pos()))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// Set groups the directives found on one declaration.
type Set struct {
	Hub    *Directive
	Method *Directive
	Hidden bool
	// Args maps parameter names to their arg directives.
	Args map[string]Directive
	// HiddenParams maps parameter names to their hidden directives.
	HiddenParams map[string]Directive
}

// Collect groups directives and rejects repeats of the same directive.
func Collect(directives []Directive) (*Set, error) {
	s := &Set{}
	for i := range directives {
		d := directives[i]
		switch d.Kind {
		case KindHub:
			if s.Hub != nil {
				return nil, &Error{Pos: d.Pos, Message: "duplicate " + Prefix + "hub directive"}
			}
			s.Hub = &d
		case KindMethod:
			if s.Method != nil {
				return nil, &Error{Pos: d.Pos, Message: "duplicate " + Prefix + "method directive"}
			}
			s.Method = &d
		case KindArg:
			if s.Args == nil {
				s.Args = make(map[string]Directive)
			}
			if _, dup := s.Args[d.Target]; dup {
				return nil, &Error{Pos: d.Pos, Message: fmt.Sprintf("duplicate %sarg directive for %q", Prefix, d.Target)}
			}
			s.Args[d.Target] = d
		case KindHidden:
			if d.Target == "" {
				s.Hidden = true
				continue
			}
			if s.HiddenParams == nil {
				s.HiddenParams = make(map[string]Directive)
			}
			s.HiddenParams[d.Target] = d
		}
	}
	return s, nil
}

// Empty reports whether the set holds no directives.
func (s *Set) Empty() bool {
	return s.Hub == nil && s.Method == nil && !s.Hidden && len(s.Args) == 0 && len(s.HiddenParams) == 0
}
