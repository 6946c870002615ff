package system

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies a system's state model at registration time.
type Kind uint8

const (
	// Unmanaged systems are value-like: a bare tick function with no
	// persistent state of its own. Handles are cheap to recreate.
	Unmanaged Kind = iota
	// Managed systems carry internal mutable state and are instantiated
	// once per runtime, then reused for its whole lifetime.
	Managed
)

func (k Kind) String() string {
	switch k {
	case Unmanaged:
		return "unmanaged"
	case Managed:
		return "managed"
	default:
		return "unknown"
	}
}

// Descriptor identifies one unit of per-frame logic in the catalog: a
// fully-qualified name, a category tag, a state classification, and a
// declared phase affinity consumed by auto-placement. Exactly one of New
// (Managed) or Run (Unmanaged) is set, matching Kind. Descriptors are
// immutable once registered.
type Descriptor struct {
	Name     string
	Category string
	Kind     Kind
	Phase    Phase

	// Internal hides the system from default discovery; it is still
	// returned when DiscoverInternal is set.
	Internal bool

	New func() System          // Managed factory, invoked once per runtime
	Run func(dt time.Duration) // Unmanaged tick function
}

func (d Descriptor) validate() error {
	if d.Name == "" {
		return errors.New("descriptor has no name")
	}
	switch d.Kind {
	case Managed:
		if d.New == nil {
			return fmt.Errorf("managed system %s has no factory", d.Name)
		}
	case Unmanaged:
		if d.Run == nil {
			return fmt.Errorf("unmanaged system %s has no tick function", d.Name)
		}
	default:
		return fmt.Errorf("system %s has unknown kind %d", d.Name, d.Kind)
	}
	return nil
}
