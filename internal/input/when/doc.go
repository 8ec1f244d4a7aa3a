// Package when parses and evaluates context predicates: boolean
// expressions over named application-state flags that gate a binding's
// eligibility.
//
// Expressions support bare identifiers, negation, and a single level of
// conjunction or disjunction:
//
//	"dashboard"
//	"!popup-visible"
//	"dashboard && !popup-visible"
//	"terminal || editor"
//
// Mixing && and || in one expression is rejected: the grammar has no
// parentheses, so there is no unambiguous reading.
package when
