// Package options holds checks shared by the entry points that accept
// alternative input sources.
package options

import (
	"strings"

	"github.com/erraggy/hubdoc/oaserrors"
)

// Source is one way of supplying input and whether the caller used it.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns a *oaserrors.ConfigError unless exactly one of sources
// is set. option names the setting in the error.
func ExactlyOne(option string, sources ...Source) error {
	names := make([]string, len(sources))
	var set []string
	for i, s := range sources {
		names[i] = s.Name
		if s.Set {
			set = append(set, s.Name)
		}
	}
	if len(set) == 1 {
		return nil
	}

	err := &oaserrors.ConfigError{
		Option:  option,
		Message: "exactly one of " + strings.Join(names, " or ") + " must be provided",
	}
	if len(set) > 1 {
		err.Value = strings.Join(set, ", ")
	}
	return err
}
