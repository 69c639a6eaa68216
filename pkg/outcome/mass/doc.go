// Package mass implements collection-level aggregation over Result[T].
//
// Traverse applies a fallible operation to an ordered slice of items and
// Sequence collapses a slice of already-computed results. Both are strictly
// sequential and short-circuit on the first failure; ordering is part of the
// contract, since first-failure semantics depend on it.
package mass
