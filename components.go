package derivesyst

import (
	"errors"
	"fmt"
)

// Components is the ordered list of MC samples stacked into the
// simulation prediction. The first component is required, the others may
// be missing from an input file.
//
// A Components value is shared by every slice of a run: a component found
// missing once is removed and not looked up again by later slices.
type Components struct {
	names []string
}

// NewComponents returns the list holding names in order. Names must be
// non-empty and unique, and at least one is needed.
func NewComponents(names ...string) (*Components, error) {
	if len(names) == 0 {
		return nil, errors.New("no MC components")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		switch {
		case n == "":
			return nil, errors.New("empty MC component name")
		case seen[n]:
			return nil, fmt.Errorf("duplicate MC component %q", n)
		}
		seen[n] = true
	}
	return &Components{names: append([]string(nil), names...)}, nil
}

// Names returns a copy of the current component names.
func (c *Components) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Components) Len() int { return len(c.names) }

// First returns the required component.
func (c *Components) First() string { return c.names[0] }

func (c *Components) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Remove drops name from the list and reports whether it was present.
// The first component cannot be removed.
func (c *Components) Remove(name string) bool {
	for i, n := range c.names {
		if n != name {
			continue
		}
		if i == 0 {
			return false
		}
		c.names = append(c.names[:i], c.names[i+1:]...)
		return true
	}
	return false
}
