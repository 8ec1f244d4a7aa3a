package key

// Keystroke is one logical input event: a set of modifier flags plus a
// canonical lowercase key symbol.
type Keystroke struct {
	// Mods are the modifier flags held during the press.
	Mods Modifier

	// Sym is the canonical lowercase key symbol: a letter, digit,
	// punctuation character, or named key such as "escape".
	Sym string
}

// Matches returns true if two keystrokes are the same press: modifier
// flags bitwise equal and symbols equal. There are no subset semantics;
// "ctrl-s" does not match "ctrl-shift-s".
func (k Keystroke) Matches(other Keystroke) bool {
	return k.Mods == other.Mods && k.Sym == other.Sym
}

// Kind returns the physical input kind of the keystroke's symbol.
func (k Keystroke) Kind() Kind {
	return SymbolKind(k.Sym)
}

// String returns the canonical text form, e.g. "ctrl-shift-p" or "k".
// The result reparses to an equal Keystroke.
func (k Keystroke) String() string {
	if k.Mods.IsEmpty() {
		return k.Sym
	}
	return k.Mods.String() + "-" + k.Sym
}

// IsZero returns true for the zero-value keystroke.
func (k Keystroke) IsZero() bool {
	return k.Sym == "" && k.Mods == ModNone
}
