package loader

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"slices"

	"github.com/erraggy/hubdoc/oaserrors"
	"golang.org/x/tools/go/packages"
)

// ParseSource type-checks in-memory files as package pkgPath and returns
// them in the shape go/packages produces with LoadMode. Imports are
// resolved from source, so files may only import the standard library.
func ParseSource(pkgPath string, files map[string]string) (*packages.Package, error) {
	if len(files) == 0 {
		return nil, &oaserrors.PreconditionError{Input: "files", Message: "at least one source file is required"}
	}

	fset := token.NewFileSet()
	syntax := make([]*ast.File, 0, len(files))
	goFiles := make([]string, 0, len(files))
	for _, name := range slices.Sorted(maps.Keys(files)) {
		f, err := parser.ParseFile(fset, name, files[name], parser.ParseComments)
		if err != nil {
			return nil, &oaserrors.LoadError{Package: pkgPath, Message: "parsing " + name, Cause: err}
		}
		syntax = append(syntax, f)
		goFiles = append(goFiles, name)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(pkgPath, fset, syntax, info)
	if err != nil {
		return nil, &oaserrors.LoadError{Package: pkgPath, Message: "type-checking", Cause: err}
	}

	return &packages.Package{
		ID:        pkgPath,
		Name:      pkg.Name(),
		PkgPath:   pkgPath,
		GoFiles:   goFiles,
		Fset:      fset,
		Syntax:    syntax,
		Types:     pkg,
		TypesInfo: info,
	}, nil
}
