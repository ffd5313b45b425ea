// Package noflylist holds the denylist of names barred from booking.
//
// The registry is deliberately an explicit dependency: it is constructed once
// at composition time and threaded into Customer and Order construction,
// never consulted through package-level state.
package noflylist

// Registry is a set of names that are not allowed to fly. Matching is exact
// and case-sensitive.
type Registry struct {
	names map[string]struct{}
}

// NewRegistry creates a registry holding the given names.
func NewRegistry(names ...string) *Registry {
	r := &Registry{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		r.names[name] = struct{}{}
	}
	return r
}

// Add puts a name on the registry. Adding an already listed name is a no-op.
func (r *Registry) Add(name string) {
	r.names[name] = struct{}{}
}

// Contains reports whether the name is barred from booking.
func (r *Registry) Contains(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Len returns how many names are listed.
func (r *Registry) Len() int {
	return len(r.names)
}
