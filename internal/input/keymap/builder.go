package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

// Entry is one declarative binding inside a Source, still in text form.
type Entry struct {
	// Keys is the keystroke sequence specification, e.g. "cmd-k cmd-t".
	Keys string

	// Action is the host action identifier. Must be empty iff Unbind
	// is set.
	Action string

	// When is an optional context predicate expression.
	When string

	// Unbind marks the entry as an explicit unbind for Keys.
	Unbind bool
}

// Source is one layered origin of bindings: built-in defaults, a base
// profile, a plugin, or a user override file. Callers conventionally
// pass lowest-precedence sources first; within a source, entry order is
// preserved.
type Source struct {
	// Name identifies the source in diagnostics, e.g. "default" or
	// "user:~/.config/keybind/keymap.json".
	Name string

	// Tier is the provenance tier applied to every entry.
	Tier Tier

	// Entries are the declarative bindings in order.
	Entries []Entry
}

// Builder errors.
var (
	// ErrNoAction indicates an entry with neither an action nor the
	// unbind marker.
	ErrNoAction = errors.New("entry has no action and is not an unbind")

	// ErrUnbindWithAction indicates an entry marked unbind that also
	// names an action.
	ErrUnbindWithAction = errors.New("unbind entry must not name an action")
)

// BuildError reports the first unparsable entry of a source with
// enough context for the host to log and continue.
type BuildError struct {
	// Source is the name of the failing source.
	Source string

	// Text is the offending keys or predicate text.
	Text string

	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("source %s: %q: %v", e.Source, e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// Build compiles the sources into a single store, preserving caller
// source order and per-source entry order. It fails fast with a
// *BuildError on the first unparsable keystroke or predicate text in
// any source.
func Build(sources ...Source) (*Store, error) {
	store := NewStore()
	for _, src := range sources {
		bindings, err := compile(src)
		if err != nil {
			return nil, err
		}
		store.Add(bindings...)
	}
	return store, nil
}

// BuildPartial compiles the sources, skipping any source with an
// unparsable entry and collecting its error. The host logs the errors
// and continues with the remaining valid sources, so a malformed user
// override degrades to defaults instead of failing hard.
func BuildPartial(sources ...Source) (*Store, []error) {
	store := NewStore()
	var errs []error
	for _, src := range sources {
		bindings, err := compile(src)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		store.Add(bindings...)
	}
	return store, errs
}

// compile parses every entry of a source into bindings, failing on the
// first bad entry.
func compile(src Source) ([]Binding, error) {
	bindings := make([]Binding, 0, len(src.Entries))
	for _, e := range src.Entries {
		b, err := compileEntry(src, e)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

func compileEntry(src Source, e Entry) (Binding, error) {
	switch {
	case e.Unbind && e.Action != "":
		return Binding{}, &BuildError{Source: src.Name, Text: e.Keys, Err: ErrUnbindWithAction}
	case !e.Unbind && e.Action == "":
		return Binding{}, &BuildError{Source: src.Name, Text: e.Keys, Err: ErrNoAction}
	}

	seq, err := key.ParseSequence(e.Keys)
	if err != nil {
		return Binding{}, &BuildError{Source: src.Name, Text: e.Keys, Err: err}
	}

	var pred when.Predicate
	if e.When != "" {
		pred, err = when.Parse(e.When)
		if err != nil {
			return Binding{}, &BuildError{Source: src.Name, Text: e.When, Err: err}
		}
	}

	return Binding{
		Sequence:  seq,
		Action:    e.Action,
		Predicate: pred,
		Tier:      src.Tier,
	}, nil
}
