package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

// Start creates a new chain from an outcome.Result
func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

// Result returns the underlying outcome.Result
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes a function that already returns outcome.Result[T]; a failed
// chain short-circuits and never invokes it
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.AndThen(c.ctx, c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.MapSuccess(c.ctx, c.res, onSuccess)}
}

// MapFail transforms the error payload of a failed chain
func (c Chain[T]) MapFail(transform func(ctx context.Context, err any) any) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.MapFail(c.ctx, c.res, transform)}
}

// Recover turns a failed chain back into a successful one
func (c Chain[T]) Recover(transform func(ctx context.Context, err any) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Recover(c.ctx, c.res, transform)}
}

// Ensure validates the successful value against a predicate
func (c Chain[T]) Ensure(predicate func(ctx context.Context, t T) bool, opts ...outcome.Option) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Ensure(c.ctx, c.res, predicate, opts...)}
}

// Tee triggers side effects for success/failure without changing the result
func (c Chain[T]) Tee(onSuccess func(ctx context.Context, t T),
	onFail func(ctx context.Context, err any)) Chain[T] {

	if onSuccess == nil {
		onSuccess = func(context.Context, T) {}
	}
	if onFail == nil {
		onFail = func(context.Context, any) {}
	}
	return Chain[T]{ctx: c.ctx, res: solo.DoubleTee(c.ctx, c.res, onSuccess, onFail)}
}

// Finally collapses the chain to a final value via exhaustive dispatch
func (c Chain[T]) Finally(onSuccess func(ctx context.Context, t T) T,
	onFail func(ctx context.Context, err any) T) T {
	return solo.When(c.ctx, c.res, onSuccess, onFail)
}

// Unwrap returns the successful value or panics with the raw error payload
func (c Chain[T]) Unwrap() T {
	return c.res.Unwrap()
}

// UnwrapOr returns the successful value or def
func (c Chain[T]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Then chains a function that returns outcome.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) outcome.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.AndThen(c.ctx, c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.MapSuccess(c.ctx, c.res, onSuccess)}
}

// Cast reinterprets the chained value as U via solo.Cast
func Cast[U, T any](c Chain[T]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Cast[U](c.res)}
}

// Finally collapses the chain into a final value of another type
func Finally[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U,
	onFail func(ctx context.Context, err any) U) U {
	return solo.When(c.ctx, c.res, onSuccess, onFail)
}
