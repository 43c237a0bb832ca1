package hub

import (
	"go/token"
	"go/types"
)

// Module is a unit of hub discovery, typically one Go package.
type Module interface {
	// Path identifies the module. Modules with equal paths are the same module.
	Path() string
	// Types returns the module's named types in declaration order.
	Types() []*Type
}

// Type is a named type that may be a hub.
type Type struct {
	// Name is the declared type name.
	Name string
	// PkgPath is the import path of the declaring package.
	PkgPath string
	// Pos is the declaration position, used in error messages.
	Pos token.Position
	// Hub is the hub descriptor, or nil when the type is not a hub.
	Hub *HubDescriptor
	// Hidden excludes the type and all of its members.
	Hidden bool
	// Methods lists declared and promoted methods in declaration order.
	Methods []*Method
}

// Key returns the type's identity: package path and name.
func (t *Type) Key() string {
	if t.PkgPath == "" {
		return t.Name
	}
	return t.PkgPath + "." + t.Name
}

// Method is a method in a hub type's method set.
type Method struct {
	Name string
	// Exported reports whether the method is callable from other packages.
	Exported bool
	// Declared is false for methods promoted from embedded fields or
	// embedded interfaces.
	Declared bool
	// Descriptor is the method descriptor, or nil.
	Descriptor *MethodDescriptor
	// Hidden excludes the method.
	Hidden bool
	// Params lists the parameters in declaration order.
	Params []*Param
}

// Param is a method parameter.
type Param struct {
	Name string
	// Type is the parameter's static type.
	Type types.Type
	// Descriptor is the argument descriptor, or nil.
	Descriptor *ArgumentDescriptor
	// Hidden excludes the parameter.
	Hidden bool
}

type staticModule struct {
	path  string
	types []*Type
}

// NewModule returns a Module over an explicit list of types.
func NewModule(path string, types ...*Type) Module {
	return &staticModule{path: path, types: types}
}

func (m *staticModule) Path() string   { return m.path }
func (m *staticModule) Types() []*Type { return m.types }
