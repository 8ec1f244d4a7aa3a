package keymap

import (
	"errors"
	"sync/atomic"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

// ErrNoValidSources indicates a reload in which every source failed to
// compile; the previous store stays active.
var ErrNoValidSources = errors.New("no valid binding sources")

// Manager owns the active store reference for a host with concurrent
// input handling and background reloads. Reads take a snapshot; a
// reload builds a complete new store off the hot path and swaps it in
// atomically, so an in-flight resolve observes either the fully-old or
// fully-new store, never a partially built one.
type Manager struct {
	active atomic.Pointer[Store]
}

// NewManager creates a manager with the given initial store. A nil
// initial store is replaced by an empty one.
func NewManager(initial *Store) *Manager {
	if initial == nil {
		initial = NewStore()
	}
	m := &Manager{}
	m.active.Store(initial)
	return m
}

// Current returns the active store snapshot. The caller must treat it
// as read-only and must not retain it across reload boundaries when
// insertion indexes matter.
func (m *Manager) Current() *Store {
	return m.active.Load()
}

// Swap installs a new store and returns the previous one.
func (m *Manager) Swap(s *Store) *Store {
	if s == nil {
		s = NewStore()
	}
	return m.active.Swap(s)
}

// Resolve resolves against the current snapshot.
func (m *Manager) Resolve(typed key.Sequence, active when.ContextSet) ([]Binding, bool) {
	return m.Current().Resolve(typed, active)
}

// Reload builds a new store from the sources and swaps it in. If any
// source fails to compile it is skipped; the per-source errors are
// returned for logging. If every source fails, the previous store
// stays active and ErrNoValidSources is appended to the errors.
func (m *Manager) Reload(sources ...Source) []error {
	store, errs := BuildPartial(sources...)
	if len(sources) > 0 && store.Len() == 0 && len(errs) == len(sources) {
		return append(errs, ErrNoValidSources)
	}
	m.Swap(store)
	return errs
}
