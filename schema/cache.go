package schema

import (
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// cache tracks generated components by type identity. Instantiated generic
// types are compared with types.Identical, so typeutil.Map is used rather
// than a plain map.
type cache struct {
	names      typeutil.Map // types.Type -> string
	byName     map[string]types.Type
	inProgress typeutil.Map // types.Type -> string
}

func newCache() *cache {
	return &cache{byName: make(map[string]types.Type)}
}

func (c *cache) name(t types.Type) (string, bool) {
	v := c.names.At(t)
	if v == nil {
		return "", false
	}
	return v.(string), true
}

func (c *cache) set(t types.Type, name string) {
	c.names.Set(t, name)
	c.byName[name] = t
}

// taken reports whether name belongs to a type other than t.
func (c *cache) taken(name string, t types.Type) bool {
	if existing, ok := c.byName[name]; ok && !types.Identical(existing, t) {
		return true
	}
	found := false
	c.inProgress.Iterate(func(key types.Type, value any) {
		if value.(string) == name && !types.Identical(key, t) {
			found = true
		}
	})
	return found
}

func (c *cache) pending(t types.Type) (string, bool) {
	v := c.inProgress.At(t)
	if v == nil {
		return "", false
	}
	return v.(string), true
}

func (c *cache) markInProgress(t types.Type, name string) {
	c.inProgress.Set(t, name)
}

func (c *cache) clearInProgress(t types.Type) {
	c.inProgress.Delete(t)
}
