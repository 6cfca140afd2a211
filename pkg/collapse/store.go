// Package collapse keeps the expanded/collapsed state of collapsible
// composite fields. State is keyed by model.Identity, lives as long as the
// store, and changes only through Toggle. Stores do no locking: hosts that
// render from several goroutines must serialise access themselves.
package collapse

import "github.com/goliatone/go-fieldbind/pkg/model"

// Store tracks which field identities are expanded.
type Store interface {
	IsExpanded(id model.Identity) bool
	Toggle(id model.Identity)
}

// Set is a map-backed Store.
type Set map[model.Identity]struct{}

// NewSet returns an empty store.
func NewSet() Set {
	return make(Set)
}

// IsExpanded reports whether id is expanded.
func (s Set) IsExpanded(id model.Identity) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips the state of id.
func (s Set) Toggle(id model.Identity) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Expanded returns the number of expanded identities.
func (s Set) Expanded() int {
	return len(s)
}

var process = NewSet()

// Default returns the process-wide store used when a binder is not given one.
func Default() Store {
	return process
}
