// Package key provides keystroke types and parsing for the keybinding
// engine.
//
// A Keystroke pairs modifier flags (ctrl, alt, shift, cmd) with a
// canonical lowercase key symbol. A Sequence is a non-empty chord of
// keystrokes typed in order.
//
// # Keystroke Specifications
//
// Specifications use the form [modifier-]*key:
//
//	"a"            - plain key
//	"escape"       - named key
//	"ctrl-s"       - with a modifier
//	"cmd-shift-p"  - with several modifiers
//	"cmd-k cmd-t"  - a two-keystroke sequence (whitespace-separated)
//
// Modifier aliases normalize to four canonical flags: control -> ctrl,
// option/opt -> alt, command/super/win -> cmd. Matching is exact:
// modifier flags must be bitwise equal and symbols equal.
//
// Mouse and gamepad buttons are ordinary symbols ("mouseleft",
// "wheelup", "pada") so that a single resolver handles every physical
// input kind; Keystroke.Kind reports the device class.
package key
