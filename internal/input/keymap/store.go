package keymap

// Store is an insertion-ordered collection of bindings with a version
// counter. The version changes iff the binding set changes, so hosts
// can cheaply detect staleness of derived data (help overlays, caches).
//
// A store is assembled once by the Builder and then used read-only;
// reload builds a brand-new store that atomically replaces the active
// one (see Manager). Store itself is not synchronized.
type Store struct {
	bindings  []Binding
	version   uint64
	nextIndex uint64
}

// NewStore creates an empty store at version 0.
func NewStore() *Store {
	return &Store{}
}

// Add appends bindings in order, assigning each the next insertion
// index. The version is bumped once per non-empty call.
func (s *Store) Add(bindings ...Binding) {
	if len(bindings) == 0 {
		return
	}
	for _, b := range bindings {
		b.index = s.nextIndex
		s.nextIndex++
		s.bindings = append(s.bindings, b)
	}
	s.version++
}

// Clear removes all bindings. The version is bumped only if the store
// was non-empty.
func (s *Store) Clear() {
	if len(s.bindings) == 0 {
		return
	}
	s.bindings = nil
	s.version++
}

// Version returns the current version counter.
func (s *Store) Version() uint64 {
	return s.version
}

// Len returns the number of bindings.
func (s *Store) Len() int {
	return len(s.bindings)
}

// Bindings returns a copy of all bindings in insertion order.
func (s *Store) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// BindingsForAction returns all bindings for the given action in
// insertion order. Unbind entries never match. Intended for
// diagnostics and help overlays.
func (s *Store) BindingsForAction(action string) []Binding {
	if action == "" {
		return nil
	}
	var out []Binding
	for _, b := range s.bindings {
		if b.Action == action {
			out = append(out, b)
		}
	}
	return out
}
