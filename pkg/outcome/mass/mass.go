package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Traverse applies op to every item strictly in order, short-circuiting on
// the first failure: later items are never processed and the failure is
// propagated with every field carried over, stack trace included. When all
// items succeed the values are collected in input order.
func Traverse[In, Out any](ctx context.Context, items []In,
	op func(ctx context.Context, in In) outcome.Result[Out]) outcome.Result[[]Out] {

	values := make([]Out, 0, len(items))
	for _, item := range items {
		r := op(ctx, item)
		if r.IsFail() {
			return outcome.FailFrom[Out, []Out](r)
		}
		values = append(values, r.Result())
	}
	return outcome.Success(values)
}

// Sequence collapses already-computed results: the first failure in order is
// propagated with every field carried over, otherwise the values are
// collected in input order.
func Sequence[T any](results []outcome.Result[T]) outcome.Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFail() {
			return outcome.FailFrom[T, []T](r)
		}
		values = append(values, r.Result())
	}
	return outcome.Success(values)
}
