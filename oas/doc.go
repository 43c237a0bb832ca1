// Package oas holds the OpenAPI document model that hubdoc populates.
//
// The model is a deliberately small subset of OpenAPI 3.x: an [Info] block,
// [Paths] keyed by the synthesized path string, one [Operation] per
// [PathItem], query [Parameter] values, and [Components] carrying the
// schemas registered while parameters were mapped.
//
// # Ownership
//
// A [Document] is owned by the caller. The builder only appends to it:
// [Document.AddPath] inserts a new path entry and fails with a
// [DuplicatePathError] when the key already exists. Documents are not safe
// for concurrent use.
//
//	doc := oas.NewDocument("Chat API", "1.0.0")
//	if err := doc.AddPath("chat/Chat/SendMessage", item); err != nil {
//	    if errors.Is(err, oaserrors.ErrDuplicatePath) {
//	        // two methods resolved to the same path
//	    }
//	}
//
// # Serialization
//
// [Document.MarshalIndentJSON] and [Document.MarshalIndentYAML] render the document
// with sorted path keys. YAML output uses go.yaml.in/yaml/v4.
//
// # Logging
//
// The [Logger] interface is shared by every hubdoc package that logs.
// [NopLogger] discards output and [NewSlogAdapter] wraps a *slog.Logger.
package oas
