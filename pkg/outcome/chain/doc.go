// Package chain provides a fluent wrapper around Result[T] for building
// synchronous pipelines using solo primitives.
//
// It composes functions like AndThen, MapSuccess, Try, Tee, and When behind
// a convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapFail/Recover: transform one side of the chain
// - Ensure: validate the value, converting violations into failures
// - Tee: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Type-changing steps are package-level functions (Then, ThenTry, Map, Cast,
// Finally) since Go methods cannot introduce type parameters.
package chain
