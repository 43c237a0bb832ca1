package loader

import (
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/internal/directive"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"golang.org/x/tools/go/packages"
)

// FromPackage builds a hub module from a loaded package. The package must
// have been loaded with at least LoadMode.
func FromPackage(pkg *packages.Package) (hub.Module, error) {
	if pkg == nil {
		return nil, &oaserrors.PreconditionError{Input: "package", Message: "nil package"}
	}
	if pkg.Types == nil || pkg.TypesInfo == nil || pkg.Fset == nil {
		return nil, &oaserrors.LoadError{
			Package: pkg.PkgPath,
			Message: "package was loaded without syntax and type information",
		}
	}

	s := &scanner{
		pkg:     pkg,
		methods: make(map[*types.Func]*methodDoc),
	}
	if err := s.collect(); err != nil {
		return nil, err
	}
	defs, err := s.buildTypes()
	if err != nil {
		return nil, err
	}
	if err := s.checkUnused(); err != nil {
		return nil, err
	}
	return hub.NewModule(pkg.PkgPath, defs...), nil
}

type typeDecl struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

type methodDoc struct {
	set  *directive.Set
	pos  token.Position
	used bool
}

type scanner struct {
	pkg     *packages.Package
	decls   []typeDecl
	methods map[*types.Func]*methodDoc
}

func (s *scanner) errorf(pos token.Pos, format string, args ...any) error {
	return &oaserrors.LoadError{
		Package: s.pkg.PkgPath,
		Pos:     s.pkg.Fset.Position(pos),
		Message: fmt.Sprintf(format, args...),
	}
}

func (s *scanner) errorAt(pos token.Position, format string, args ...any) error {
	return &oaserrors.LoadError{
		Package: s.pkg.PkgPath,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

func (s *scanner) directives(cg *ast.CommentGroup) (*directive.Set, error) {
	ds, err := directive.ParseComments(s.pkg.Fset, cg)
	if err == nil {
		var set *directive.Set
		set, err = directive.Collect(ds)
		if err == nil {
			return set, nil
		}
	}
	loadErr := &oaserrors.LoadError{Package: s.pkg.PkgPath, Message: err.Error()}
	var dErr *directive.Error
	if errors.As(err, &dErr) {
		loadErr.Pos = dErr.Pos
		loadErr.Message = dErr.Message
	}
	return nil, loadErr
}

// collect walks the syntax trees once, recording type declarations in
// source order and the directives attached to every method.
func (s *scanner) collect() error {
	for _, file := range s.pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts := spec.(*ast.TypeSpec)
					doc := ts.Doc
					if doc == nil && !d.Lparen.IsValid() {
						doc = d.Doc
					}
					s.decls = append(s.decls, typeDecl{spec: ts, doc: doc})
					if iface, ok := ts.Type.(*ast.InterfaceType); ok {
						if err := s.collectInterface(iface); err != nil {
							return err
						}
					}
				}
			case *ast.FuncDecl:
				if err := s.collectFunc(d); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *scanner) collectFunc(fd *ast.FuncDecl) error {
	set, err := s.directives(fd.Doc)
	if err != nil || set.Empty() {
		return err
	}
	if fd.Recv == nil {
		return s.errorf(fd.Doc.Pos(), "hubdoc directives cannot apply to function %s", fd.Name.Name)
	}
	fn, ok := s.pkg.TypesInfo.Defs[fd.Name].(*types.Func)
	if !ok {
		return nil
	}
	s.methods[fn] = &methodDoc{set: set, pos: s.pkg.Fset.Position(fd.Doc.Pos())}
	return nil
}

func (s *scanner) collectInterface(iface *ast.InterfaceType) error {
	for _, field := range iface.Methods.List {
		set, err := s.directives(field.Doc)
		if err != nil {
			return err
		}
		if set.Empty() {
			continue
		}
		if len(field.Names) == 0 {
			return s.errorf(field.Doc.Pos(), "hubdoc directives cannot apply to embedded interfaces")
		}
		for _, name := range field.Names {
			if fn, ok := s.pkg.TypesInfo.Defs[name].(*types.Func); ok {
				s.methods[fn] = &methodDoc{set: set, pos: s.pkg.Fset.Position(field.Doc.Pos())}
			}
		}
	}
	return nil
}

func (s *scanner) buildTypes() ([]*hub.Type, error) {
	var out []*hub.Type
	for _, decl := range s.decls {
		set, err := s.directives(decl.doc)
		if err != nil {
			return nil, err
		}
		ts := decl.spec
		if set.Method != nil || len(set.Args) > 0 || len(set.HiddenParams) > 0 {
			return nil, s.errorf(decl.doc.Pos(), "type %s: method and argument directives belong on methods", ts.Name.Name)
		}

		obj, ok := s.pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
		if !ok {
			continue
		}
		t := &hub.Type{
			Name:    obj.Name(),
			PkgPath: s.pkg.PkgPath,
			Pos:     s.pkg.Fset.Position(ts.Pos()),
			Hidden:  set.Hidden,
		}
		if set.Hub != nil {
			switch {
			case ts.Assign.IsValid():
				return nil, s.errorf(ts.Pos(), "type alias %s cannot be a hub", ts.Name.Name)
			case ts.TypeParams != nil:
				return nil, s.errorf(ts.Pos(), "generic type %s cannot be a hub", ts.Name.Name)
			}
			t.Hub = hubDescriptor(set.Hub)
			if t.Methods, err = s.buildMethods(obj); err != nil {
				return nil, err
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// buildMethods returns the hub's method set: declared methods in source
// order followed by promoted ones.
func (s *scanner) buildMethods(obj *types.TypeName) ([]*hub.Method, error) {
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, nil
	}

	var declared, promoted []*types.Func
	switch u := named.Underlying().(type) {
	case *types.Interface:
		explicit := make(map[*types.Func]bool, u.NumExplicitMethods())
		for i := range u.NumExplicitMethods() {
			fn := u.ExplicitMethod(i)
			explicit[fn] = true
			declared = append(declared, fn)
		}
		for i := range u.NumMethods() {
			if fn := u.Method(i); !explicit[fn] {
				promoted = append(promoted, fn)
			}
		}
	case *types.Pointer:
		return nil, nil
	default:
		for i := range named.NumMethods() {
			declared = append(declared, named.Method(i))
		}
		mset := types.NewMethodSet(types.NewPointer(named))
		for i := range mset.Len() {
			sel := mset.At(i)
			if len(sel.Index()) > 1 {
				promoted = append(promoted, sel.Obj().(*types.Func))
			}
		}
	}

	slices.SortStableFunc(declared, byPos)
	slices.SortStableFunc(promoted, byPos)

	methods := make([]*hub.Method, 0, len(declared)+len(promoted))
	for _, fn := range declared {
		m, err := s.method(fn, true)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	for _, fn := range promoted {
		m, err := s.method(fn, false)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

func byPos(a, b *types.Func) int {
	var pa, pb string
	if a.Pkg() != nil {
		pa = a.Pkg().Path()
	}
	if b.Pkg() != nil {
		pb = b.Pkg().Path()
	}
	return cmp.Or(strings.Compare(pa, pb), cmp.Compare(a.Pos(), b.Pos()))
}

func (s *scanner) method(fn *types.Func, declared bool) (*hub.Method, error) {
	m := &hub.Method{
		Name:     fn.Name(),
		Exported: fn.Exported(),
		Declared: declared,
	}
	params := fn.Type().(*types.Signature).Params()
	for i := range params.Len() {
		v := params.At(i)
		name := v.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("arg%d", i)
		}
		m.Params = append(m.Params, &hub.Param{Name: name, Type: v.Type()})
	}

	md, ok := s.methods[fn]
	if !ok {
		return m, nil
	}
	md.used = true
	set := md.set
	if set.Hub != nil {
		return nil, s.errorAt(set.Hub.Pos, "method %s: %shub belongs on a type", fn.Name(), directive.Prefix)
	}
	m.Hidden = set.Hidden
	if set.Method != nil {
		m.Descriptor = methodDescriptor(set.Method)
	}
	for _, name := range slices.Sorted(maps.Keys(set.Args)) {
		d := set.Args[name]
		p := findParam(m.Params, name)
		if p == nil {
			return nil, s.errorAt(d.Pos, "method %s has no parameter %q", fn.Name(), name)
		}
		desc, _ := d.Option(directive.KeyDescription)
		p.Descriptor = &hub.ArgumentDescriptor{Description: desc}
	}
	for _, name := range slices.Sorted(maps.Keys(set.HiddenParams)) {
		p := findParam(m.Params, name)
		if p == nil {
			return nil, s.errorAt(set.HiddenParams[name].Pos, "method %s has no parameter %q", fn.Name(), name)
		}
		p.Hidden = true
	}
	return m, nil
}

func findParam(params []*hub.Param, name string) *hub.Param {
	for _, p := range params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func hubDescriptor(d *directive.Directive) *hub.HubDescriptor {
	desc := &hub.HubDescriptor{
		Path:      hub.DefaultHubPath,
		Discovery: hub.DefaultDiscoveryMode,
	}
	if v, ok := d.Option(directive.KeyPath); ok && v != "" {
		desc.Path = v
	}
	if v, ok := d.Option(directive.KeyDocuments); ok {
		desc.Documents = directive.SplitList(v)
	}
	if v, ok := d.Option(directive.KeyDiscovery); ok {
		desc.Discovery = hub.DiscoveryMode(v)
	}
	return desc
}

func methodDescriptor(d *directive.Directive) *hub.MethodDescriptor {
	desc := &hub.MethodDescriptor{}
	desc.Name, _ = d.Option(directive.KeyName)
	if v, ok := d.Option(directive.KeyVerb); ok {
		desc.Verb = oas.OperationKind(strings.ToLower(v))
	}
	desc.Summary, _ = d.Option(directive.KeySummary)
	desc.Description, _ = d.Option(directive.KeyDescription)
	if v, ok := d.Option(directive.KeyArgs); ok {
		desc.Args = hub.ArgDiscovery(v)
	}
	return desc
}

func (s *scanner) checkUnused() error {
	var unused []*methodDoc
	for _, md := range s.methods {
		if !md.used {
			unused = append(unused, md)
		}
	}
	if len(unused) == 0 {
		return nil
	}
	slices.SortFunc(unused, func(a, b *methodDoc) int {
		return cmp.Or(strings.Compare(a.pos.Filename, b.pos.Filename), cmp.Compare(a.pos.Line, b.pos.Line))
	})
	return &oaserrors.LoadError{
		Package: s.pkg.PkgPath,
		Pos:     unused[0].pos,
		Message: "method directives apply only to methods of hub types",
	}
}
