package validator

import (
	"errors"

	"github.com/erraggy/hubdoc/internal/pathutil"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// maxSchemaNestingDepth bounds recursion into inline schemas.
const maxSchemaNestingDepth = 100

// Result holds the findings of one validation.
type Result struct {
	// Findings lists structural findings first, then semantic findings in
	// document order.
	Findings []*oaserrors.ValidationError
}

// Valid reports whether the document produced no findings.
func (r *Result) Valid() bool {
	return len(r.Findings) == 0
}

// Err joins all findings into one error, or returns nil when valid.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Findings))
	for i, f := range r.Findings {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Validator validates generated documents. It is read-only after New and
// safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
	strict bool
	logger oas.Logger
}

// New compiles the embedded document schema and returns a Validator.
func New(opts ...Option) (*Validator, error) {
	cfg := &config{logger: oas.NopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	sch, err := compileDocumentSchema()
	if err != nil {
		return nil, err
	}
	return &Validator{schema: sch, strict: cfg.strict, logger: cfg.logger}, nil
}

// Validate checks doc and returns its findings. The error is non-nil only
// when validation itself could not run.
func (v *Validator) Validate(doc *oas.Document) (*Result, error) {
	if doc == nil {
		return nil, &oaserrors.PreconditionError{Input: "document", Message: "a document is required"}
	}
	result := &Result{}

	structural, err := v.structural(doc)
	if err != nil {
		return nil, err
	}
	result.Findings = append(result.Findings, structural...)

	c := newChecker(doc)
	defer pathutil.Put(c.path)
	c.run()
	if v.strict {
		c.strict()
	}
	result.Findings = append(result.Findings, c.findings...)

	v.logger.Debug("validated document", "paths", len(doc.Paths), "findings", len(result.Findings))
	return result, nil
}

// Validate is a convenience wrapper that validates doc with a new
// Validator.
func Validate(doc *oas.Document, opts ...Option) (*Result, error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return v.Validate(doc)
}
