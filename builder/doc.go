// Package builder turns hub definitions into OpenAPI path entries.
//
// A [Builder] is created over a set of [hub.Module] values and applied once
// per document-generation pass:
//
//	b, err := builder.New(modules)
//	if err != nil {
//	    return err // no modules supplied
//	}
//	doc := oas.NewDocument("Chat API", "1.0.0")
//	reg, _ := schema.NewRegistry()
//	if err := b.Apply(doc, reg, "v1"); err != nil {
//	    return err
//	}
//
// # Pipeline
//
// Each pass runs the same stages in order:
//
//  1. Scan: keep types that carry a hub descriptor and no hidden marker,
//     once per type identity, and only when the hub belongs to the target
//     document.
//  2. Resolve methods: the hub's [hub.DiscoveryMode] selects either methods
//     with descriptors (None) or every exported method declared on the hub
//     type (Methods, MethodsAndArgs). Hidden methods are dropped.
//  3. Resolve arguments: a method descriptor's [hub.ArgDiscovery] decides;
//     without a descriptor the hub's mode decides. Described-only or all
//     parameters are kept, then hidden parameters and context.Context
//     parameters are dropped.
//  4. Synthesize paths: {hubName} in the hub template becomes the derived
//     hub name, and {methodName} in the method template becomes the method
//     name. See [HubName], [HubPath] and [MethodPath].
//  5. Map parameters: each argument becomes a query parameter whose schema
//     is a $ref when the registry already knows the type.
//  6. Assemble: one operation per path, tagged with the derived hub name,
//     inserted with [oas.Document.AddPath].
//
// # Errors
//
// An unsupported discovery mode, argument override or verb aborts the pass
// with a *[BuilderError] matching oaserrors.ErrConfig. A path collision
// aborts with the document's *oas.DuplicatePathError matching
// oaserrors.ErrDuplicatePath. There is no partial success: the first error
// is returned.
//
// # Concurrency
//
// A Builder holds no per-pass state and may be applied repeatedly, but the
// document and registry it writes to are not safe for concurrent use.
package builder
