package solo

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/pkg/outcome"
)

// ErrTypeCast marks the failure produced by Cast when the runtime value is
// not assignable to the requested type.
var ErrTypeCast = errors.New("type cast failed")

func Succeed[T any](input T, opts ...outcome.Option) outcome.Result[T] {
	return outcome.Success(input, opts...)
}

func Fail[T any](err any, opts ...outcome.Option) outcome.Result[T] {
	return outcome.Fail[T](err, opts...)
}

// When dispatches exhaustively over the two variants: exactly one of the two
// handlers runs, and its value is returned.
func When[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFail func(ctx context.Context, err any) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFail(ctx, input.Err())
}

// Fold is When under its conventional name; the dispatch contract is
// identical.
func Fold[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFail func(ctx context.Context, err any) Out) Out {
	return When(ctx, input, onSuccess, onFail)
}

// MaybeWhen is When with optional handlers. A missing handler for the
// non-matching variant is fine; a missing handler for the actual variant is
// caller misuse and panics naming the unhandled state.
func MaybeWhen[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFail func(ctx context.Context, err any) Out) Out {

	if input.IsSuccess() {
		if onSuccess == nil {
			panic(errors.New("No handler provided for Success state"))
		}
		return onSuccess(ctx, input.Result())
	}
	if onFail == nil {
		panic(errors.New("No handler provided for Fail state"))
	}
	return onFail(ctx, input.Err())
}

// WhenSuccess runs the handler only for a success; ok reports whether it ran.
func WhenSuccess[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out) (out Out, ok bool) {

	if !input.IsSuccess() {
		return out, false
	}
	return onSuccess(ctx, input.Result()), true
}

// WhenFail runs the handler only for a failure; ok reports whether it ran.
func WhenFail[In, Out any](ctx context.Context, input outcome.Result[In],
	onFail func(ctx context.Context, err any) Out) (out Out, ok bool) {

	if input.IsSuccess() {
		return out, false
	}
	return onFail(ctx, input.Err()), true
}

// MapSuccess transforms the success value, keeping title and message. A
// failure passes through with every field carried over; the transform is
// never invoked for it.
func MapSuccess[In, Out any](ctx context.Context, input outcome.Result[In],
	transform func(ctx context.Context, r In) Out) outcome.Result[Out] {

	if input.IsSuccess() {
		return outcome.SuccessFrom(input, transform(ctx, input.Result()))
	}
	return outcome.FailFrom[In, Out](input)
}

// MapFail transforms the error payload of a failure, keeping stack trace,
// title and message. A success passes through untouched.
func MapFail[T any](ctx context.Context, input outcome.Result[T],
	transform func(ctx context.Context, err any) any) outcome.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return outcome.RemapFail[T, T](input, transform(ctx, input.Err()))
}

// AndThen is the monadic bind: the transform runs on a success and its
// result is returned as-is, so fallible steps chain. Failure is absorbing;
// the transform is never invoked for it.
func AndThen[In, Out any](ctx context.Context, input outcome.Result[In],
	transform func(ctx context.Context, r In) outcome.Result[Out]) outcome.Result[Out] {

	if input.IsSuccess() {
		return transform(ctx, input.Result())
	}
	return outcome.FailFrom[In, Out](input)
}

// Recover turns a failure into a success by transforming its error payload
// into a value, keeping title and message. A success passes through.
func Recover[T any](ctx context.Context, input outcome.Result[T],
	transform func(ctx context.Context, err any) T) outcome.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return outcome.SuccessFrom(input, transform(ctx, input.Err()))
}

// Try lifts a conventional (value, error) call into the result channel.
func Try[In, Out any](ctx context.Context, input outcome.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return outcome.Fail[Out](err)
		}
		return outcome.Success(out)
	}
	return outcome.FailFrom[In, Out](input)
}

// Cast reinterprets the success value as Out. An incompatible runtime value
// yields a failure titled "Type Cast Error" naming both types; a failure
// input propagates unchanged and the cast is never attempted.
func Cast[Out, In any](input outcome.Result[In]) outcome.Result[Out] {
	if !input.IsSuccess() {
		return outcome.FailFrom[In, Out](input)
	}
	if v, ok := any(input.Result()).(Out); ok {
		return outcome.SuccessFrom(input, v)
	}
	return outcome.Fail[Out](ErrTypeCast,
		outcome.WithTitle("Type Cast Error"),
		outcome.WithMessage(fmt.Sprintf("cannot cast value of type %T to %v",
			input.Result(), reflect.TypeFor[Out]())))
}

// Swap inverts the variant, carrying title and message both ways. The former
// success value becomes the error payload (canonical default Fault when the
// value is nil); the former error payload becomes the success value (Done
// when it is nil). Swap is total and never panics.
func Swap[T any](input outcome.Result[T]) outcome.Result[any] {
	if input.IsSuccess() {
		err := any(input.Result())
		if outcome.IsNil(err) {
			err = outcome.NewFault("Operation failed")
		}
		return outcome.RemapFail[T, any](input, err)
	}
	value := input.Err()
	if outcome.IsNil(value) {
		value = outcome.Done{}
	}
	return outcome.SuccessFrom(input, value)
}

// Ensure validates a success value. A false predicate converts it into a
// failure built from the supplied WithError/WithTitle/WithMessage options or
// their defaults. A failure passes through and the predicate is never
// invoked for it.
func Ensure[T any](ctx context.Context, input outcome.Result[T],
	predicate func(ctx context.Context, r T) bool, opts ...outcome.Option) outcome.Result[T] {

	if !input.IsSuccess() {
		return input
	}
	if predicate(ctx, input.Result()) {
		return input
	}

	o := outcome.NewOptions(opts...)
	err := o.Err
	if outcome.IsNil(err) {
		err = errors.New("Validation failed")
	}
	title := "Validation Error"
	if o.Title != nil {
		title = *o.Title
	}
	message := fmt.Sprintf("value %v did not satisfy the predicate", input.Result())
	if o.Message != nil {
		message = *o.Message
	}
	return outcome.Fail[T](err, outcome.WithTitle(title), outcome.WithMessage(message))
}

// EnsureAll runs every check against a success value, joining all violation
// messages into a single failure. A failure input passes through unchecked.
func EnsureAll[T any](ctx context.Context, input outcome.Result[T],
	checks ...func(ctx context.Context, r T) (valid bool, errMsg string)) outcome.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	var err error
	for _, check := range checks {
		if valid, errMsg := check(ctx, input.Result()); !valid {
			e := outcome.GetErrors(err)
			e = append(e, errors.New(errMsg))
			err = errors.Join(e...)
		}
	}
	if outcome.IsNil(err) {
		return input
	}
	return outcome.Fail[T](err, outcome.WithTitle("Validation Error"))
}

// Tee triggers a side effect for a success and passes the result through
// unchanged.
func Tee[T any](ctx context.Context, input outcome.Result[T],
	onSuccess func(ctx context.Context, r T)) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

// DoubleTee triggers exactly one side effect depending on the variant and
// passes the result through unchanged.
func DoubleTee[T any](ctx context.Context, input outcome.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFail func(ctx context.Context, err any)) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFail(ctx, input.Err())
	}
	return input
}
