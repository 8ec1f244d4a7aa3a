package key

import "strings"

// Kind classifies the physical input device a symbol belongs to.
// All kinds flow through the same Keystroke type and the same resolver;
// the kind exists only for display and host-side routing.
type Kind uint8

const (
	// KindKeyboard is a regular keyboard key.
	KindKeyboard Kind = iota

	// KindMouse is a mouse button or wheel step.
	KindMouse

	// KindGamepad is a gamepad button or d-pad direction.
	KindGamepad
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindMouse:
		return "mouse"
	case KindGamepad:
		return "gamepad"
	default:
		return "unknown"
	}
}

// symbolAliases maps alternate key names to their canonical symbol.
// Canonical symbols are always lowercase and contain no separator.
var symbolAliases = map[string]string{
	"esc":      "escape",
	"return":   "enter",
	"cr":       "enter",
	"bs":       "backspace",
	"del":      "delete",
	"ins":      "insert",
	"pgup":     "pageup",
	"pgdn":     "pagedown",
	"spacebar": "space",
}

// namedSymbols is the set of recognized multi-character key symbols.
// Single characters (letters, digits, punctuation) are always valid
// and are not listed here.
var namedSymbols = map[string]Kind{
	"escape":      KindKeyboard,
	"enter":       KindKeyboard,
	"tab":         KindKeyboard,
	"space":       KindKeyboard,
	"backspace":   KindKeyboard,
	"delete":      KindKeyboard,
	"insert":      KindKeyboard,
	"home":        KindKeyboard,
	"end":         KindKeyboard,
	"pageup":      KindKeyboard,
	"pagedown":    KindKeyboard,
	"up":          KindKeyboard,
	"down":        KindKeyboard,
	"left":        KindKeyboard,
	"right":       KindKeyboard,
	"f1":          KindKeyboard,
	"f2":          KindKeyboard,
	"f3":          KindKeyboard,
	"f4":          KindKeyboard,
	"f5":          KindKeyboard,
	"f6":          KindKeyboard,
	"f7":          KindKeyboard,
	"f8":          KindKeyboard,
	"f9":          KindKeyboard,
	"f10":         KindKeyboard,
	"f11":         KindKeyboard,
	"f12":         KindKeyboard,
	"mouseleft":   KindMouse,
	"mouseright":  KindMouse,
	"mousemiddle": KindMouse,
	"mouseback":   KindMouse,
	"mousefwd":    KindMouse,
	"wheelup":     KindMouse,
	"wheeldown":   KindMouse,
	"pada":        KindGamepad,
	"padb":        KindGamepad,
	"padx":        KindGamepad,
	"pady":        KindGamepad,
	"padup":       KindGamepad,
	"paddown":     KindGamepad,
	"padleft":     KindGamepad,
	"padright":    KindGamepad,
	"padstart":    KindGamepad,
	"padselect":   KindGamepad,
	"padlb":       KindGamepad,
	"padrb":       KindGamepad,
}

// CanonicalSymbol normalizes a key name to its canonical lowercase form.
// Aliases are resolved ("esc" -> "escape"). The second return value is
// false when the name is multi-character and not a recognized symbol.
func CanonicalSymbol(name string) (string, bool) {
	sym := strings.ToLower(name)
	if alias, ok := symbolAliases[sym]; ok {
		sym = alias
	}

	// Single characters (letters, digits, punctuation) are taken as-is.
	if len([]rune(sym)) == 1 {
		return sym, true
	}

	_, ok := namedSymbols[sym]
	return sym, ok
}

// SymbolKind returns the input kind of a canonical symbol.
// Unknown symbols are treated as keyboard keys.
func SymbolKind(sym string) Kind {
	if k, ok := namedSymbols[sym]; ok {
		return k
	}
	return KindKeyboard
}
