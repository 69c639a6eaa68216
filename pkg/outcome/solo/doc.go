// Package solo contains single-value, synchronous combinators over
// Result[T]. These functions form the core building blocks for error-aware
// pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - When/Fold/MaybeWhen: exhaustive dispatch over the two variants
// - WhenSuccess/WhenFail: one-sided dispatch with a comma-ok result
// - MapSuccess/MapFail: transform one side, carrying the rest forward
// - AndThen: monadic bind, failure is absorbing
// - Recover: turn a failure back into a success
// - Try: call a function (Out, error) and convert the error to a failure
// - Cast/Swap: reinterpret the value type or invert the variant
// - Ensure/EnsureAll: predicate validation producing failures on invalid input
// - Tee/DoubleTee: side-effect helpers
//
// Every caller-supplied handler receives the context; a handler that blocks
// suspends the chain until it returns. The combinators themselves never
// watch the context: no timeout or cancellation is applied internally.
package solo
