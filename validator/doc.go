// Package validator checks documents produced by hubdoc.
//
// Validation runs in two stages:
//
//   - Structural: the document is marshalled to JSON and validated against
//     an embedded JSON Schema describing the subset of OpenAPI 3.x that
//     hubdoc emits.
//   - Semantic: rules a JSON Schema cannot express. Every $ref must resolve
//     to components.schemas, each path item holds exactly one operation,
//     each operation has exactly one tag and that tag is declared, every
//     parameter is a query parameter with a name unique to its operation,
//     and schemas are internally consistent (array items, length and range
//     bounds, required properties).
//
// Strict mode additionally reports components that nothing references and
// declared tags that no operation uses.
//
// # Usage
//
//	v, err := validator.New()
//	if err != nil {
//	    return err
//	}
//	result, err := v.Validate(doc)
//	if err != nil {
//	    return err
//	}
//	for _, f := range result.Findings {
//	    fmt.Println(f)
//	}
//
// Findings are *oaserrors.ValidationError values and match
// oaserrors.ErrValidation with errors.Is.
package validator
