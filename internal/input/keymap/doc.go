// Package keymap stores layered key bindings and resolves keystroke
// input to actions.
//
// # Layered Sources
//
// Bindings come from ordered sources, each tagged with a provenance
// Tier: built-in defaults, base profiles, plugin registrations, and
// user overrides. The Builder concatenates sources into one Store,
// preserving source order and per-source entry order, and fails fast
// on the first unparsable keystroke or predicate text.
//
// # Resolution
//
// Store.Resolve classifies every binding against the keystrokes typed
// so far: complete (sequence equals the typed chord), pending (the
// typed chord is a strict prefix), or no match. Complete matches are
// ranked by tier ascending, then insertion index descending, so a user
// binding beats a default and a later registration beats an earlier
// one within the same tier. The pending flag tells the input loop to
// keep buffering.
//
// # Unbinding
//
// An entry with no action is an explicit unbind: it suppresses
// bindings for its exact sequence at its own tier and every
// lower-precedence tier, while a strictly higher-precedence binding
// survives. This lets a user remove a default chord without replacing
// it.
//
// # Reload
//
// Stores are immutable after building. Manager holds the active store
// behind an atomic pointer; a reload builds a complete new store off
// the hot path and swaps it in, falling back to the previous store
// when every source is malformed.
package keymap
