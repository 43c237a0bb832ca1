// Package hubdoc generates OpenAPI documents from annotated realtime hub
// definitions.
//
// A hub is a Go interface or struct type marked with a //hubdoc:hub
// directive. Each of its documented methods becomes one path entry in the
// generated document, and each documented argument becomes a query
// parameter whose schema is derived from the Go type.
//
// # Annotations
//
//	// IChatHub is the realtime chat contract.
//	//
//	//hubdoc:hub path:"chat/{hubName}" discovery:"MethodsAndArgs"
//	type IChatHub interface {
//	    SendMessage(user, text string) error
//
//	    //hubdoc:method name:"messages/{methodName}" verb:"put" summary:"Post a message"
//	    //hubdoc:arg msg description:"The message to store"
//	    Post(ctx context.Context, msg Message) error
//
//	    //hubdoc:hidden
//	    Reset() error
//	}
//
// The derived hub name strips a leading I and a trailing Hub from
// interface-style names, so the example above produces the paths
// chat/Chat/SendMessage and chat/Chat/messages/Post.
//
// # Quick Start
//
//	doc, err := hubdoc.Generate(ctx,
//	    hubdoc.WithPatterns("./hubs/..."),
//	    hubdoc.WithTitle("Chat API"),
//	    hubdoc.WithDocumentName("v1"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := doc.MarshalIndentJSON()
//
// # Packages
//
//   - hub: the metadata model (descriptors, modules, types, methods)
//   - loader: loads modules from Go packages and parses directives
//   - builder: scan, resolve, path synthesis, parameter mapping, assembly
//   - schema: Go type to schema generation and component registry
//   - oas: the document model and JSON/YAML marshalling
//   - validator: structural and semantic checks of generated documents
//   - oaserrors: error types and sentinels shared by all packages
//
// The hubdoc command wraps this package with generate, validate, list,
// serve and mcp subcommands.
package hubdoc
