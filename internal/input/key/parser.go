package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	// ErrEmpty indicates an empty keystroke or sequence specification.
	ErrEmpty = errors.New("empty keystroke")

	// ErrEmptyKey indicates a specification with modifiers but no key,
	// such as "ctrl-".
	ErrEmptyKey = errors.New("missing key after modifiers")
)

// UnknownModifierError indicates an unrecognized modifier name.
type UnknownModifierError struct {
	// Name is the offending modifier token.
	Name string
}

// Error implements the error interface.
func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unknown modifier %q", e.Name)
}

// Parse parses a keystroke specification into a Keystroke.
//
// The grammar is [modifier-]*key: tokens are split on "-", the last
// token is the key, and every preceding token is a modifier. Modifier
// aliases are normalized (control -> ctrl, option -> alt,
// command/super -> cmd). Parsing is case-insensitive.
//
// Examples: "a", "escape", "ctrl-s", "cmd-shift-p", "alt-f4".
func Parse(text string) (Keystroke, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Keystroke{}, ErrEmpty
	}

	sym := text
	var modsPart string
	if i := strings.LastIndex(text, "-"); i >= 0 {
		sym = text[i+1:]
		modsPart = text[:i]
		if sym == "" {
			// A trailing "-" separator only makes sense when the key
			// itself is the "-" character ("ctrl--", or bare "-").
			switch {
			case text == "-":
				sym = "-"
			case strings.HasSuffix(modsPart, "-"):
				sym = "-"
				modsPart = strings.TrimSuffix(modsPart, "-")
			default:
				return Keystroke{}, ErrEmptyKey
			}
		}
	}

	var mods Modifier
	if modsPart != "" {
		for _, tok := range strings.Split(modsPart, "-") {
			mod := ModifierFromName(tok)
			if mod == ModNone {
				return Keystroke{}, &UnknownModifierError{Name: tok}
			}
			mods = mods.With(mod)
		}
	}

	canonical, _ := CanonicalSymbol(sym)
	return Keystroke{Mods: mods, Sym: canonical}, nil
}

// MustParse parses a keystroke specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(text string) Keystroke {
	k, err := Parse(text)
	if err != nil {
		panic("invalid keystroke: " + text + ": " + err.Error())
	}
	return k
}

// NormalizeSpec parses and re-formats a specification to its canonical
// form, e.g. "Control-S" -> "ctrl-s".
func NormalizeSpec(text string) (string, error) {
	k, err := Parse(text)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}
