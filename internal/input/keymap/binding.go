package keymap

import (
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

// Binding maps a keystroke sequence to an action, optionally gated by a
// context predicate. A binding with an empty action is an unbind entry:
// it suppresses same-or-lower-precedence bindings for the exact same
// sequence instead of triggering anything.
//
// Bindings are constructed once by the Builder and are immutable
// afterward; the store that holds them owns them.
type Binding struct {
	// Sequence is the chord that triggers the binding. Length >= 1.
	Sequence key.Sequence

	// Action is the host action identifier, e.g. "file.save".
	// Empty means this is an unbind entry.
	Action string

	// Predicate gates eligibility. Nil means unconditional.
	Predicate when.Predicate

	// Tier is the provenance of the binding's source.
	Tier Tier

	// index is the store-assigned insertion index, unique and strictly
	// increasing within a store.
	index uint64
}

// IsUnbind returns true if the binding is an unbind entry.
func (b Binding) IsUnbind() bool {
	return b.Action == ""
}

// Index returns the store-assigned insertion index.
func (b Binding) Index() uint64 {
	return b.index
}

// eligible reports whether the binding participates in resolution at
// all given the active contexts. An ineligible binding is neither a
// match nor a disabler.
func (b Binding) eligible(active when.ContextSet) bool {
	return b.Predicate == nil || b.Predicate.Eval(active)
}

// matchKind classifies a binding against the keystrokes typed so far.
type matchKind uint8

const (
	// matchNone: the binding cannot be reached from the typed prefix.
	matchNone matchKind = iota

	// matchPending: the typed keystrokes are a strict prefix of the
	// binding's sequence; more input could complete it.
	matchPending

	// matchComplete: the typed keystrokes equal the binding's sequence.
	matchComplete
)

// classify compares the binding's sequence against the typed prefix.
func (b Binding) classify(typed key.Sequence) matchKind {
	if len(b.Sequence) < len(typed) {
		return matchNone
	}
	if !b.Sequence.HasPrefix(typed) {
		return matchNone
	}
	if len(b.Sequence) == len(typed) {
		return matchComplete
	}
	return matchPending
}
