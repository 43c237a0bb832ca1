package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"golang.org/x/tools/go/packages"
)

// LoadMode is the go/packages mode FromPackage requires.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Config controls package loading.
type Config struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
	// BuildFlags are passed to the go command, e.g. -tags.
	BuildFlags []string
	// Env overrides the go command environment when non-nil.
	Env []string
	// Logger receives debug output. Nil disables logging.
	Logger oas.Logger
}

// Load loads the packages matching patterns and returns their hub modules
// in the order go/packages reports them.
func Load(ctx context.Context, cfg Config, patterns ...string) ([]hub.Module, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	log := cfg.Logger
	if log == nil {
		log = oas.NopLogger{}
	}

	pcfg := &packages.Config{
		Context:    ctx,
		Mode:       LoadMode,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
		Env:        cfg.Env,
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &oaserrors.LoadError{Message: "loading packages", Cause: err}
	}
	if len(pkgs) == 0 {
		return nil, &oaserrors.LoadError{Message: fmt.Sprintf("no packages found matching %q", patterns)}
	}

	modules := make([]hub.Module, 0, len(pkgs))
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, &oaserrors.LoadError{
				Package: pkg.PkgPath,
				Message: "package has errors",
				Cause:   packageErrors(pkg.Errors),
			}
		}
		m, err := FromPackage(pkg)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded package", "package", pkg.PkgPath, "types", len(m.Types()))
		modules = append(modules, m)
	}
	return modules, nil
}

func packageErrors(errs []packages.Error) error {
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}
