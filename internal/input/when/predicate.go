package when

import "strings"

// ContextSet is the set of context names currently active in the host
// application. Lookup is by exact name.
type ContextSet map[string]bool

// NewContextSet creates a context set from the given names.
func NewContextSet(names ...string) ContextSet {
	set := make(ContextSet, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Has returns true if the named context is active.
func (c ContextSet) Has(name string) bool {
	return c[name]
}

// Add marks a context as active.
func (c ContextSet) Add(name string) {
	c[name] = true
}

// Remove marks a context as inactive.
func (c ContextSet) Remove(name string) {
	delete(c, name)
}

// Predicate is a boolean expression over named context flags.
// Evaluation is pure: no side effects, bounded by the AST depth.
type Predicate interface {
	// Eval evaluates the predicate against the active context set.
	Eval(active ContextSet) bool

	// String returns the canonical text form of the predicate.
	String() string
}

// Is is satisfied when the named context is active.
type Is string

// Eval implements Predicate.
func (p Is) Eval(active ContextSet) bool {
	return active.Has(string(p))
}

// String implements Predicate.
func (p Is) String() string {
	return string(p)
}

// Not negates its operand.
type Not struct {
	Pred Predicate
}

// Eval implements Predicate.
func (p Not) Eval(active ContextSet) bool {
	return !p.Pred.Eval(active)
}

// String implements Predicate.
func (p Not) String() string {
	return "!" + p.Pred.String()
}

// And is satisfied when every operand is satisfied.
type And []Predicate

// Eval implements Predicate.
func (p And) Eval(active ContextSet) bool {
	for _, sub := range p {
		if !sub.Eval(active) {
			return false
		}
	}
	return true
}

// String implements Predicate.
func (p And) String() string {
	return joinPredicates(p, " && ")
}

// Or is satisfied when at least one operand is satisfied.
type Or []Predicate

// Eval implements Predicate.
func (p Or) Eval(active ContextSet) bool {
	for _, sub := range p {
		if sub.Eval(active) {
			return true
		}
	}
	return false
}

// String implements Predicate.
func (p Or) String() string {
	return joinPredicates(p, " || ")
}

func joinPredicates(preds []Predicate, sep string) string {
	parts := make([]string, len(preds))
	for i, p := range preds {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}
