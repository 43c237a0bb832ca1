package schema

import (
	"fmt"
	"go/types"
	"path"
	"strings"
	"text/template"
	"unicode"

	"github.com/erraggy/hubdoc/oaserrors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingStrategy selects how component names are derived from Go types.
type NamingStrategy int

const (
	// NamingDefault uses "package.TypeName". Example: chat.Message
	NamingDefault NamingStrategy = iota
	// NamingPascalCase uses "PackageTypeName". Example: ChatMessage
	NamingPascalCase
	// NamingTypeOnly uses "TypeName". Example: Message
	NamingTypeOnly
)

// String returns the strategy's configuration name.
func (s NamingStrategy) String() string {
	switch s {
	case NamingDefault:
		return "default"
	case NamingPascalCase:
		return "pascal"
	case NamingTypeOnly:
		return "type"
	default:
		return fmt.Sprintf("NamingStrategy(%d)", int(s))
	}
}

// ParseNamingStrategy parses a strategy by its configuration name.
func ParseNamingStrategy(s string) (NamingStrategy, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return NamingDefault, nil
	case "pascal", "pascalcase":
		return NamingPascalCase, nil
	case "type", "typeonly":
		return NamingTypeOnly, nil
	default:
		return 0, &oaserrors.ConfigError{
			Option:  "naming",
			Value:   s,
			Message: "expected one of default, pascal, type",
		}
	}
}

// NameContext describes a named type to a name template.
type NameContext struct {
	// Type is the sanitized type name, including generic arguments.
	Type string
	// TypeBase is the type name without generic arguments.
	TypeBase string
	// TypeArgs holds the sanitized generic argument names.
	TypeArgs []string
	// Package is the package name, e.g. "chat".
	Package string
	// PackagePath is the import path, e.g. "example.com/chat".
	PackagePath string
	// PackagePathSanitized is PackagePath with slashes replaced.
	PackagePathSanitized string
}

type namer struct {
	strategy NamingStrategy
	tmpl     *template.Template
}

func newNamer(strategy NamingStrategy, tmpl string) (*namer, error) {
	n := &namer{strategy: strategy}
	if tmpl == "" {
		return n, nil
	}
	t, err := template.New("schemaName").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "name template", Value: tmpl, Cause: err}
	}
	sample := NameContext{
		Type:                 "Message",
		TypeBase:             "Message",
		Package:              "chat",
		PackagePath:          "example.com/chat",
		PackagePathSanitized: "example.com_chat",
	}
	if err := t.Execute(&strings.Builder{}, sample); err != nil {
		return nil, &oaserrors.ConfigError{Option: "name template", Value: tmpl, Message: "execution failed", Cause: err}
	}
	n.tmpl = t
	return n, nil
}

func (n *namer) name(t *types.Named) string {
	ctx := buildContext(t)
	if n.tmpl != nil {
		var sb strings.Builder
		if err := n.tmpl.Execute(&sb, ctx); err == nil && sb.Len() > 0 {
			return sanitizeName(sb.String())
		}
	}
	switch n.strategy {
	case NamingPascalCase:
		return toPascalCase(ctx.Package) + toPascalCase(ctx.Type)
	case NamingTypeOnly:
		return ctx.Type
	default:
		if ctx.Package == "" {
			return ctx.Type
		}
		return ctx.Package + "." + ctx.Type
	}
}

// nameFor returns the component name for t, falling back to the sanitized
// package path when taken reports the preferred name belongs to another type.
func (n *namer) nameFor(t *types.Named, taken func(string) bool) string {
	name := n.name(t)
	if taken(name) {
		ctx := buildContext(t)
		if ctx.PackagePathSanitized != "" {
			name = ctx.PackagePathSanitized + "_" + ctx.Type
		}
	}
	return name
}

func buildContext(t *types.Named) NameContext {
	obj := t.Obj()
	ctx := NameContext{TypeBase: obj.Name()}
	if pkg := obj.Pkg(); pkg != nil {
		ctx.Package = pkg.Name()
		ctx.PackagePath = pkg.Path()
		ctx.PackagePathSanitized = sanitizePath(pkg.Path())
	}

	args := t.TypeArgs()
	if args.Len() == 0 {
		ctx.Type = ctx.TypeBase
		return ctx
	}
	for i := range args.Len() {
		ctx.TypeArgs = append(ctx.TypeArgs, sanitizeName(typeArgName(args.At(i))))
	}
	ctx.Type = ctx.TypeBase + "_" + strings.Join(ctx.TypeArgs, "_")
	return ctx
}

// typeArgName renders a generic argument without package qualifiers.
func typeArgName(t types.Type) string {
	return types.TypeString(t, func(*types.Package) string { return "" })
}

// sanitizePath replaces path separators with underscores.
// Example: "github.com/org/chat" -> "github.com_org_chat"
func sanitizePath(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}

// sanitizeName replaces characters that are awkward in $ref URIs.
// Example: "map[string]User" -> "map_string_User"
func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-' {
			return r
		}
		return '_'
	}, name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.Trim(name, "_")
}

// toPascalCase title-cases each separator-delimited word and joins them.
// Example: "user_profile" -> "UserProfile"
func toPascalCase(s string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	var sb strings.Builder
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == '/'
	}) {
		sb.WriteString(caser.String(word))
	}
	return sb.String()
}

// toSnakeCase converts "UserProfile" to "user_profile".
func toSnakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteRune('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			sb.WriteRune('_')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func templateFuncs() template.FuncMap {
	titleCaser := cases.Title(language.English)
	return template.FuncMap{
		"pascal":     toPascalCase,
		"snake":      toSnakeCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"sanitize":   sanitizeName,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
		"base":       path.Base,
	}
}
