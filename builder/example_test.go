package builder_test

import (
	"fmt"
	"go/types"
	"log"

	"github.com/erraggy/hubdoc/builder"
	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/schema"
)

// Example demonstrates documenting a hand-built hub module.
func Example() {
	chat := &hub.Type{
		Name:    "IChatHub",
		PkgPath: "example.com/chat",
		Hub:     &hub.HubDescriptor{Path: "chat/{hubName}", Discovery: hub.DiscoveryMethods},
		Methods: []*hub.Method{
			{
				Name:     "SendMessage",
				Exported: true,
				Declared: true,
				Params: []*hub.Param{
					{Name: "user", Type: types.Typ[types.String], Descriptor: &hub.ArgumentDescriptor{Description: "Sender"}},
					{Name: "text", Type: types.Typ[types.String]},
				},
			},
			{
				Name:       "History",
				Exported:   true,
				Declared:   true,
				Descriptor: &hub.MethodDescriptor{Verb: oas.OperationGet, Args: hub.ArgsAll},
				Params:     []*hub.Param{{Name: "limit", Type: types.Typ[types.Int]}},
			},
		},
	}

	b, err := builder.New([]hub.Module{hub.NewModule("example.com/chat", chat)})
	if err != nil {
		log.Fatal(err)
	}
	reg, err := schema.NewRegistry()
	if err != nil {
		log.Fatal(err)
	}

	doc := oas.NewDocument("Chat API", "1.0.0")
	if err := b.Apply(doc, reg, "v1"); err != nil {
		log.Fatal(err)
	}

	for _, path := range doc.Paths.Keys() {
		for _, kind := range oas.OperationKinds {
			op := doc.Paths[path].Operations()[kind]
			if op == nil {
				continue
			}
			fmt.Printf("%s %s tags=%v params=%d\n", kind, path, op.Tags, len(op.Parameters))
		}
	}
	// Output:
	// get chat/Chat/History tags=[Chat] params=1
	// post chat/Chat/SendMessage tags=[Chat] params=1
}

// ExampleMethodPath shows how a method descriptor's name template is
// expanded.
func ExampleMethodPath() {
	base := builder.HubPath(hub.DefaultHubPath, builder.HubName("IPresenceHub"))
	fmt.Println(builder.MethodPath(base, "Join", nil))
	fmt.Println(builder.MethodPath(base, "Join", &hub.MethodDescriptor{Name: "rooms/{methodName}"}))
	// Output:
	// hubs/Presence/Join
	// hubs/Presence/rooms/Join
}
