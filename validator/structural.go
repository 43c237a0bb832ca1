package validator

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const documentSchemaURL = "document.schema.json"

//go:embed schemas/document.schema.json
var documentSchema []byte

func compileDocumentSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(documentSchema))
	if err != nil {
		return nil, fmt.Errorf("validator: parse document schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(documentSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("validator: add document schema: %w", err)
	}
	sch, err := c.Compile(documentSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("validator: compile document schema: %w", err)
	}
	return sch, nil
}

// structural validates the JSON form of doc against the document schema.
func (v *Validator) structural(doc *oas.Document) ([]*oaserrors.ValidationError, error) {
	data, err := doc.MarshalIndentJSON()
	if err != nil {
		return nil, fmt.Errorf("validator: marshal document: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("validator: decode document: %w", err)
	}

	err = v.schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, fmt.Errorf("validator: %w", err)
	}

	var out []*oaserrors.ValidationError
	collectSchemaErrors(verr, message.NewPrinter(language.English), &out)
	return out, nil
}

// collectSchemaErrors flattens the error tree, keeping only leaves.
func collectSchemaErrors(verr *jsonschema.ValidationError, p *message.Printer, out *[]*oaserrors.ValidationError) {
	if verr == nil {
		return
	}
	if len(verr.Causes) == 0 {
		*out = append(*out, &oaserrors.ValidationError{
			Path:    instancePath(verr.InstanceLocation),
			Message: verr.ErrorKind.LocalizedString(p),
		})
		return
	}
	for _, cause := range verr.Causes {
		collectSchemaErrors(cause, p, out)
	}
}

func instancePath(location []string) string {
	if len(location) == 0 {
		return "document"
	}
	return strings.Join(location, ".")
}
