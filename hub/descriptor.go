package hub

import (
	"slices"

	"github.com/erraggy/hubdoc/oas"
)

// Template placeholders, one per path level.
const (
	// HubNamePlaceholder is replaced with the hub's derived name.
	HubNamePlaceholder = "{hubName}"
	// MethodNamePlaceholder is replaced with the method's own name.
	MethodNamePlaceholder = "{methodName}"
)

// DefaultHubPath is the hub path template used when a hub directive does
// not set one.
const DefaultHubPath = "hubs/" + HubNamePlaceholder

// DiscoveryMode controls which members of a hub are documented when they
// carry no explicit descriptor.
type DiscoveryMode string

const (
	// DiscoveryNone documents only methods and arguments with descriptors.
	DiscoveryNone DiscoveryMode = "None"
	// DiscoveryMethods documents every public method, but only described arguments.
	DiscoveryMethods DiscoveryMode = "Methods"
	// DiscoveryMethodsAndArgs documents every public method and all of its arguments.
	DiscoveryMethodsAndArgs DiscoveryMode = "MethodsAndArgs"
)

// DefaultDiscoveryMode applies when a hub directive does not set one.
const DefaultDiscoveryMode = DiscoveryMethodsAndArgs

// ArgDiscovery is a per-method override of argument discovery.
type ArgDiscovery string

const (
	// ArgsNone documents only described arguments.
	ArgsNone ArgDiscovery = "None"
	// ArgsAll documents every argument.
	ArgsAll ArgDiscovery = "Args"
)

// HubDescriptor marks a type as a hub.
type HubDescriptor struct {
	// Path is the hub path template. It should contain HubNamePlaceholder.
	Path string
	// Documents restricts the hub to the named documents. Empty means all.
	Documents []string
	// Discovery is the default member discovery mode. Unrecognized values
	// are kept as given and rejected when the hub is resolved.
	Discovery DiscoveryMode
}

// InDocument reports whether the hub belongs in the named document.
func (d *HubDescriptor) InDocument(name string) bool {
	return len(d.Documents) == 0 || slices.Contains(d.Documents, name)
}

// MethodDescriptor documents a hub method and overrides its defaults.
type MethodDescriptor struct {
	// Name is the method path segment template. Empty means the method name.
	Name string
	// Verb is the operation kind. Empty means the builder default.
	Verb oas.OperationKind
	// Summary is a short description of the operation.
	Summary string
	// Description is the long form description of the operation.
	Description string
	// Args overrides argument discovery. Empty resolves as ArgsNone.
	Args ArgDiscovery
}

// ArgumentDescriptor documents a single method parameter.
type ArgumentDescriptor struct {
	Description string
}
