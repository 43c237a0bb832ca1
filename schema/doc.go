// Package schema maps Go types to OpenAPI schemas.
//
// A [Registry] generates schemas from go/types types and remembers every
// named struct it has turned into a component:
//
//	reg, _ := schema.NewRegistry()
//	s := reg.Generate(msgType)       // {$ref: "#/components/schemas/chat.Message"}
//	name, ok := reg.Lookup(msgType)  // "chat.Message", true
//	doc.AddSchemas(reg.Components())
//
// # Type Mapping
//
//   - Named structs become components referenced by $ref; anonymous structs
//     are inlined as objects.
//   - Pointers mark the schema nullable.
//   - Slices and arrays become arrays, except []byte which is string/byte.
//   - Maps become objects with additionalProperties.
//   - time.Time is string/date-time, time.Duration is integer/int64, and
//     any type named UUID in a uuid package is string/uuid.
//   - Interfaces become the empty schema. Channels, functions and other
//     kinds that cannot be serialized are logged and also become the
//     empty schema.
//   - Recursive types reference the component being generated.
//
// # Struct Fields
//
// Field names come from json tags; "-" skips a field. Non-pointer fields
// without omitempty are required. Embedded structs are flattened. The oas
// tag customizes a field's schema:
//
//	Text string `json:"text" oas:"description=Message body,maxLength=500"`
//
// Supported oas keys: description, format, enum (pipe separated), pattern,
// deprecated, minimum, maximum, minLength, maxLength and required.
//
// # Component Names
//
// [NamingDefault] produces "pkg.Type", [NamingPascalCase] produces
// "PkgType" and [NamingTypeOnly] produces "Type". [WithNameTemplate]
// accepts a text/template over [NameContext]. When a name is already taken
// by a different type the full package path is used instead, e.g.
// "github.com_org_chat_Message". Generic instantiations are named
// "Base_Arg1_Arg2".
//
// A Registry is not safe for concurrent use.
package schema
