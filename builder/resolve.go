package builder

import (
	"go/types"

	"github.com/erraggy/hubdoc/hub"
)

type methodRule func(m *hub.Method) bool

type argRule func(p *hub.Param) bool

func describedMethods(m *hub.Method) bool { return m.Exported && m.Descriptor != nil }

func declaredMethods(m *hub.Method) bool { return m.Exported && m.Declared }

func describedArgs(p *hub.Param) bool { return p.Descriptor != nil }

func allArgs(*hub.Param) bool { return true }

// methodRules selects a hub's methods by its discovery mode.
var methodRules = map[hub.DiscoveryMode]methodRule{
	hub.DiscoveryNone:           describedMethods,
	hub.DiscoveryMethods:        declaredMethods,
	hub.DiscoveryMethodsAndArgs: declaredMethods,
}

// hubArgRules selects arguments of methods that have no descriptor.
var hubArgRules = map[hub.DiscoveryMode]argRule{
	hub.DiscoveryNone:           describedArgs,
	hub.DiscoveryMethods:        describedArgs,
	hub.DiscoveryMethodsAndArgs: allArgs,
}

// methodArgRules selects arguments of methods that have a descriptor. The
// descriptor always wins over the hub's mode. An empty override is None.
var methodArgRules = map[hub.ArgDiscovery]argRule{
	"":           describedArgs,
	hub.ArgsNone: describedArgs,
	hub.ArgsAll:  allArgs,
}

// resolveMethods returns the hub's documented methods in declaration order.
func resolveMethods(t *hub.Type) ([]*hub.Method, error) {
	rule, ok := methodRules[t.Hub.Discovery]
	if !ok {
		return nil, NewUnsupportedDiscoveryError(t.Key(), string(t.Hub.Discovery))
	}
	var out []*hub.Method
	for _, m := range t.Methods {
		if rule(m) && !m.Hidden {
			out = append(out, m)
		}
	}
	return out, nil
}

// resolveArgs returns the method's documented parameters in declaration
// order.
func resolveArgs(t *hub.Type, m *hub.Method) ([]*hub.Param, error) {
	var rule argRule
	if m.Descriptor == nil {
		r, ok := hubArgRules[t.Hub.Discovery]
		if !ok {
			return nil, NewUnsupportedDiscoveryError(t.Key(), string(t.Hub.Discovery))
		}
		rule = r
	} else {
		r, ok := methodArgRules[m.Descriptor.Args]
		if !ok {
			return nil, NewUnsupportedArgDiscoveryError(t.Key(), m.Name, string(m.Descriptor.Args))
		}
		rule = r
	}

	var out []*hub.Param
	for _, p := range m.Params {
		if isContext(p.Type) || p.Hidden {
			continue
		}
		if rule(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// isContext reports whether t is context.Context. Such parameters carry
// the connection's lifetime, not caller data.
func isContext(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "context" && obj.Name() == "Context"
}
