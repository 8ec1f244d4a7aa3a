package when

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	// ErrEmpty indicates an empty predicate expression.
	ErrEmpty = errors.New("empty predicate")

	// ErrMixedOperators indicates an expression combining && and ||.
	// The grammar has no parentheses, so such an expression has no
	// unambiguous reading and is rejected rather than miscomputed.
	ErrMixedOperators = errors.New("predicate mixes && and ||")
)

// InvalidIdentifierError indicates a context name with characters
// outside the identifier alphabet.
type InvalidIdentifierError struct {
	// Name is the offending token.
	Name string
}

// Error implements the error interface.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid context identifier %q", e.Name)
}

// Parse parses a context predicate expression.
//
// The grammar is deliberately minimal:
//
//	expr    = or | and | unary
//	or      = unary ("||" unary)+
//	and     = unary ("&&" unary)+
//	unary   = "!" unary | ident
//
// A bare identifier yields Is, a leading "!" yields Not, a top-level
// "&&" split yields And, and a top-level "||" split yields Or. An
// expression containing both operators fails with ErrMixedOperators.
func Parse(text string) (Predicate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}

	hasAnd := strings.Contains(text, "&&")
	hasOr := strings.Contains(text, "||")
	if hasAnd && hasOr {
		return nil, fmt.Errorf("%w: %q", ErrMixedOperators, text)
	}

	switch {
	case hasAnd:
		return parseJunction(text, "&&", func(ops []Predicate) Predicate { return And(ops) })
	case hasOr:
		return parseJunction(text, "||", func(ops []Predicate) Predicate { return Or(ops) })
	default:
		return parseUnary(text)
	}
}

// MustParse parses a predicate and panics on error.
// Use only for known-valid expressions in initialization code.
func MustParse(text string) Predicate {
	p, err := Parse(text)
	if err != nil {
		panic("invalid predicate: " + text + ": " + err.Error())
	}
	return p
}

func parseJunction(text, op string, join func([]Predicate) Predicate) (Predicate, error) {
	parts := strings.Split(text, op)
	ops := make([]Predicate, 0, len(parts))
	for _, part := range parts {
		sub, err := parseUnary(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ops = append(ops, sub)
	}
	return join(ops), nil
}

func parseUnary(text string) (Predicate, error) {
	if text == "" {
		return nil, ErrEmpty
	}
	if strings.HasPrefix(text, "!") {
		sub, err := parseUnary(strings.TrimSpace(text[1:]))
		if err != nil {
			return nil, err
		}
		return Not{Pred: sub}, nil
	}
	if !isIdentifier(text) {
		return nil, &InvalidIdentifierError{Name: text}
	}
	return Is(text), nil
}

// isIdentifier reports whether s is a valid context name: letters,
// digits, and the separators "-", "_", ".".
func isIdentifier(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
