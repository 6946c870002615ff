package system

import "fmt"

// DiscoverFlags narrows what a Source returns from DiscoverAll.
type DiscoverFlags uint32

const (
	DiscoverDefault DiscoverFlags = 0
	// DiscoverInternal also returns systems registered as internal plumbing.
	DiscoverInternal DiscoverFlags = 1 << 0
)

// Source supplies the full catalog of discoverable systems. The composition
// engine consumes it as an opaque set once per build and never discovers
// systems itself.
type Source interface {
	DiscoverAll(flags DiscoverFlags) []Descriptor
}

// Catalog is an insertion-ordered set of system descriptors keyed by name.
// It is the default Source implementation.
type Catalog struct {
	byName map[string]Descriptor
	order  []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]Descriptor, 32),
	}
}

// Register adds one descriptor. Registering a name twice is an error; the
// catalog is the authority on system identity.
func (c *Catalog) Register(d Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}
	if _, exists := c.byName[d.Name]; exists {
		return fmt.Errorf("system %s already registered", d.Name)
	}
	c.byName[d.Name] = d
	c.order = append(c.order, d.Name)
	return nil
}

func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// DiscoverAll returns the catalog in registration order. Internal systems
// are skipped unless DiscoverInternal is set. The returned slice is a copy.
func (c *Catalog) DiscoverAll(flags DiscoverFlags) []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, name := range c.order {
		d := c.byName[name]
		if d.Internal && flags&DiscoverInternal == 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}
