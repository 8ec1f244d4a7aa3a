package keymap

import (
	"sort"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

// Resolve matches the keystrokes typed so far against the store's
// bindings under the active contexts.
//
// The returned matches are the complete matches ranked best-first:
// tier ascending (user before default), then insertion index descending
// (later registration wins within a tier). The pending flag is true if
// more input could still complete a longer binding, signalling the host
// input loop to keep buffering the chord.
//
// A binding whose predicate evaluates false is excluded entirely: it is
// neither a match, nor pending, nor a disabler.
//
// An unbind entry suppresses bindings for its exact sequence at its own
// tier and every lower-precedence tier; a strictly higher-precedence
// binding survives. Unbind entries never appear in the results and
// never contribute pendingness themselves.
//
// Resolve has no error path: an empty result for given input is a
// valid, silent outcome.
func (s *Store) Resolve(typed key.Sequence, active when.ContextSet) ([]Binding, bool) {
	// Disabled sequences: for each exact sequence with an eligible
	// unbind entry consistent with the typed prefix, record the
	// highest-precedence disabling tier.
	var disabled map[string]Tier
	for _, b := range s.bindings {
		if !b.IsUnbind() || !b.eligible(active) {
			continue
		}
		if b.classify(typed) == matchNone {
			continue
		}
		seq := b.Sequence.String()
		if disabled == nil {
			disabled = make(map[string]Tier)
		}
		if t, ok := disabled[seq]; !ok || b.Tier.Outranks(t) {
			disabled[seq] = b.Tier
		}
	}

	suppressed := func(b Binding) bool {
		t, ok := disabled[b.Sequence.String()]
		return ok && !b.Tier.Outranks(t)
	}

	var matches []Binding
	pending := false
	for _, b := range s.bindings {
		if b.IsUnbind() || !b.eligible(active) {
			continue
		}
		switch b.classify(typed) {
		case matchComplete:
			if !suppressed(b) {
				matches = append(matches, b)
			}
		case matchPending:
			if !suppressed(b) {
				pending = true
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Tier != matches[j].Tier {
			return matches[i].Tier < matches[j].Tier
		}
		return matches[i].index > matches[j].index
	})

	return matches, pending
}

// ResolveBest returns only the single highest-precedence match, or
// false when nothing matched.
func (s *Store) ResolveBest(typed key.Sequence, active when.ContextSet) (Binding, bool) {
	matches, _ := s.Resolve(typed, active)
	if len(matches) == 0 {
		return Binding{}, false
	}
	return matches[0], true
}
