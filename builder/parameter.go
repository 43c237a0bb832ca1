package builder

import (
	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/oas"
)

// mapParameter converts a resolved argument into a query parameter. A type
// the registry already knows is referenced instead of regenerated.
func mapParameter(reg SchemaRegistry, p *hub.Param) *oas.Parameter {
	param := &oas.Parameter{
		Name: p.Name,
		In:   oas.LocationQuery,
	}
	if p.Descriptor != nil {
		param.Description = p.Descriptor.Description
	}
	if id, ok := reg.Lookup(p.Type); ok {
		param.Schema = oas.RefSchema(id)
	} else {
		param.Schema = reg.Generate(p.Type)
	}
	return param
}

func mapParameters(reg SchemaRegistry, params []*hub.Param) []*oas.Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]*oas.Parameter, len(params))
	for i, p := range params {
		out[i] = mapParameter(reg, p)
	}
	return out
}
