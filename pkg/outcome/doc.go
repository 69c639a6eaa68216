// Package outcome defines Result[T], a closed two-variant value describing
// the outcome of a fallible operation: a success carrying a value of type T,
// or a failure carrying an untyped error payload plus optional title,
// message and stack trace side channels.
//
// Results are immutable value objects. The package holds construction
// (Success/Fail/EmptySuccess/EmptyFail), propagation helpers used by the
// combinator packages (FailFrom/SuccessFrom/RemapFail), accessors, structural
// equality and rendering, and Fault, the structured error wrapper raised at
// the two designated panic points (Result() on a failure, PanicWhenFail).
//
// Combinators live in subpackages: solo for single-value composition, mass
// for collection traversal, chain for a fluent wrapper.
package outcome
