// Package loader reads hub definitions from Go packages.
//
// Hubs are Go types annotated with //hubdoc: directives in their doc
// comments:
//
//	// IChatHub is the realtime chat contract.
//	//
//	//hubdoc:hub path:"chat/{hubName}" discovery:"MethodsAndArgs"
//	type IChatHub interface {
//		//hubdoc:method verb:"post" summary:"Send a message"
//		//hubdoc:arg user description:"Sender name"
//		SendMessage(ctx context.Context, user, text string) error
//	}
//
// [Load] runs golang.org/x/tools/go/packages over a set of patterns and
// returns one [hub.Module] per package. [FromPackage] converts a package the
// caller already loaded; it needs syntax and type information.
//
// Both interface and non-interface hubs are supported. Methods written on
// the hub type itself are declared; methods coming from embedded fields or
// embedded interfaces are promoted and marked as not declared. Parameter
// names and types come from the method signature, and unnamed parameters
// are called arg0, arg1, and so on.
//
// Malformed directives, and directives placed where they cannot apply, are
// reported as *oaserrors.LoadError values carrying the source position.
package loader
