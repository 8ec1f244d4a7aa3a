package key

import "strings"

// Sequence is a non-empty ordered list of keystrokes forming a chord.
// Examples: "cmd-s", "cmd-k cmd-t", "g g".
type Sequence []Keystroke

// Len returns the number of keystrokes in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// Equals returns true if both sequences have the same keystrokes in the
// same order.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i, k := range s {
		if !k.Matches(other[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if the sequence starts with the given prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, k := range prefix {
		if !k.Matches(s[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical text form: keystrokes separated by a
// single space. The result reparses to an equal Sequence.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, k := range s {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Append returns a new sequence with the keystroke added at the end.
// The receiver is not modified.
func (s Sequence) Append(k Keystroke) Sequence {
	out := make(Sequence, len(s)+1)
	copy(out, s)
	out[len(s)] = k
	return out
}

// ParseSequence parses a whitespace-separated list of keystroke
// specifications, failing on the first bad token. An empty or blank
// string yields ErrEmpty: sequences always have length >= 1.
func ParseSequence(text string) (Sequence, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}

	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		k, err := Parse(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, k)
	}
	return seq, nil
}

// MustParseSequence parses a sequence and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(text string) Sequence {
	seq, err := ParseSequence(text)
	if err != nil {
		panic("invalid key sequence: " + text + ": " + err.Error())
	}
	return seq
}
