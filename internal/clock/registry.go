package clock

import "fmt"

// Registry is the ordered, immutable set of zones known to the system.
//
// It is built once at startup from configuration and never mutated after,
// so reads require no locking. Zone order matters: CycleZone advances
// through the registry in order, and the device displays zones in the
// same sequence.
type Registry struct {
	zones []Zone
	index map[string]int
}

// NewRegistry builds a Registry from an ordered zone list.
//
// Returns an error if the list is empty or contains duplicate names.
// Config validation catches these earlier; this guards direct construction.
func NewRegistry(zones []Zone) (*Registry, error) {
	if len(zones) == 0 {
		return nil, ErrEmptyRegistry
	}

	index := make(map[string]int, len(zones))
	for i, z := range zones {
		if z.Name == "" {
			return nil, fmt.Errorf("%w: zone %d has no name", ErrInvalidZone, i)
		}
		if _, exists := index[z.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateZone, z.Name)
		}
		index[z.Name] = i
	}

	// Copy so callers cannot mutate the registry through the input slice.
	owned := make([]Zone, len(zones))
	copy(owned, zones)

	return &Registry{zones: owned, index: index}, nil
}

// Len returns the number of zones in the registry.
func (r *Registry) Len() int {
	return len(r.zones)
}

// At returns the zone at position i. Panics if i is out of range;
// callers derive i from IndexOf or modulo Len, so a bad index is a bug.
func (r *Registry) At(i int) Zone {
	return r.zones[i]
}

// IndexOf returns the position of the named zone, and whether it exists.
func (r *Registry) IndexOf(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Contains reports whether the named zone is in the registry.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Zones returns a copy of the ordered zone list.
func (r *Registry) Zones() []Zone {
	zones := make([]Zone, len(r.zones))
	copy(zones, r.zones)
	return zones
}
