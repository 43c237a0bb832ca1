// Package oaserrors provides structured error types for the hubdoc library.
//
// Import path: github.com/erraggy/hubdoc/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a broken hub annotation apart from a path collision
// or a missing input.
//
// # Error Types
//
//   - [LoadError]: package loading failures and malformed //hubdoc: directives
//   - [ConfigError]: invalid option values (discovery modes, verbs, naming strategies)
//   - [PreconditionError]: a pipeline constructed without required inputs
//   - [ValidationError]: findings reported by the validator package
//
// The document store in package oas defines its own DuplicatePathError, and
// the builder package defines BuilderError; both classify themselves with the
// sentinels below.
//
// # Sentinel Errors
//
//   - [ErrLoad]: Matches any [LoadError]
//   - [ErrConfig]: Matches any [ConfigError] and builder configuration errors
//   - [ErrPrecondition]: Matches any [PreconditionError]
//   - [ErrDuplicatePath]: Matches duplicate path insertions
//   - [ErrValidation]: Matches any [ValidationError]
//
// # Usage Examples
//
//	b, err := builder.New(modules)
//	if errors.Is(err, oaserrors.ErrPrecondition) {
//	    // nothing to scan
//	}
//
//	var loadErr *oaserrors.LoadError
//	if errors.As(err, &loadErr) {
//	    fmt.Printf("bad directive at %s\n", loadErr.Pos)
//	}
package oaserrors
