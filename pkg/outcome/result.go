package outcome

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result is a closed two-variant outcome of a fallible operation: either a
// success carrying a value of type T, or a failure carrying an untyped error
// payload. Instances are immutable; combinators always build new ones.
type Result[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	result     T
	err        any
	stackTrace any
	title      *string
	message    *string
	isSuccess  bool
	hasResult  bool
}

func Success[T any](r T, opts ...Option) Result[T] {
	o := NewOptions(opts...)
	return Result[T]{
		result:    r,
		title:     o.Title,
		message:   o.Message,
		isSuccess: true,
		hasResult: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err any, opts ...Option) Result[T] {
	o := NewOptions(opts...)
	return Result[T]{
		err:        err,
		stackTrace: o.StackTrace,
		title:      o.Title,
		message:    o.Message,
		isSuccess:  false,
		hasResult:  false,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// EmptySuccess builds the designated default success, carrying the canonical
// Done marker as its value.
func EmptySuccess() Result[Done] {
	return Success(Done{})
}

// EmptyFail builds the designated default failure, wrapping the canonical
// "Operation failed" Fault as its error.
func EmptyFail[T any]() Result[T] {
	return Fail[T](NewFault(failedMessage))
}

// FailFrom propagates a failed result into a Result of another type.
// Every field is carried over unchanged, including id and createdAt.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:        from.err,
		stackTrace: from.stackTrace,
		title:      from.title,
		message:    from.message,
		isSuccess:  false,
		hasResult:  false,
		createdAt:  from.createdAt,
		id:         from.id,
	}
}

// RemapFail propagates a result into a failure of another type with a
// replacement error value, keeping stack trace, title and message.
func RemapFail[In, Out any](from Result[In], err any) Result[Out] {
	out := FailFrom[In, Out](from)
	out.err = err
	return out
}

// SuccessFrom builds a success around value, carrying title, message, id and
// createdAt over from an existing result of any variant.
func SuccessFrom[In, Out any](from Result[In], value Out) Result[Out] {
	return Result[Out]{
		result:    value,
		title:     from.title,
		message:   from.message,
		isSuccess: true,
		hasResult: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the success value. On a failed result it panics with the
// *Fault built from the failure's fields; callers that need a non-panicking
// read use Unwrap-family helpers or AsSuccess.
func (r Result[T]) Result() T {
	if !r.isSuccess {
		panic(r.Fault())
	}
	return r.result
}

// Err returns the error payload of a failure, nil for a success.
func (r Result[T]) Err() any {
	return r.err
}

func (r Result[T]) StackTrace() any {
	return r.stackTrace
}

func (r Result[T]) Title() (string, bool) {
	if r.title == nil {
		return "", false
	}
	return *r.title, true
}

func (r Result[T]) Message() (string, bool) {
	if r.message == nil {
		return "", false
	}
	return *r.message, true
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFail() bool {
	return !r.isSuccess
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Fault assembles the exception payload from the failure's fields. For a
// success it returns nil.
func (r Result[T]) Fault() *Fault {
	if r.isSuccess {
		return nil
	}
	err := r.err
	if IsNil(err) {
		err = failedMessage
	}
	f := &Fault{err: err, title: r.title, message: r.message, stackTrace: r.stackTrace}
	return f
}

// PanicWhenFail panics with the failure's *Fault; on a success it is a no-op.
// Integrates with host code that aborts on a raised error rather than
// inspecting the result.
func (r Result[T]) PanicWhenFail() {
	if !r.isSuccess {
		panic(r.Fault())
	}
}

// Unwrap returns the success value. On a failure it panics with the raw
// error payload itself, not the *Fault wrapper; Result() is the wrapping
// counterpart.
func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		if IsNil(r.err) {
			panic(r.Fault())
		}
		panic(r.err)
	}
	return r.result
}

// UnwrapOr returns the success value, or def on a failure.
func (r Result[T]) UnwrapOr(def T) T {
	if !r.isSuccess {
		return def
	}
	return r.result
}

// UnwrapOrCompute returns the success value, or the supplier's value on a
// failure. The supplier is never invoked for a success.
func (r Result[T]) UnwrapOrCompute(ctx context.Context, supply func(ctx context.Context) T) T {
	if !r.isSuccess {
		return supply(ctx)
	}
	return r.result
}

// AsSuccess narrows to the success value; ok is false for a failure.
func (r Result[T]) AsSuccess() (value T, ok bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.result, true
}

// AsFail narrows to the error payload; ok is false for a success.
func (r Result[T]) AsFail() (err any, ok bool) {
	if r.isSuccess {
		return nil, false
	}
	return r.err, true
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(result: %v, title: %v, message: %v)",
			r.result, strOrNil(r.title), strOrNil(r.message))
	}
	return fmt.Sprintf("Fail(error: %v, title: %v, message: %v)",
		r.err, strOrNil(r.title), strOrNil(r.message))
}

// Equal compares structurally, per variant: successes by result, title and
// message; failures by error, title and message. Stack trace, id and
// createdAt do not participate. A success never equals a failure.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if !eqStringPtr(r.title, other.title) || !eqStringPtr(r.message, other.message) {
		return false
	}
	if r.isSuccess {
		return r.hasResult == other.hasResult && reflect.DeepEqual(r.result, other.result)
	}
	return eqPayload(r.err, other.err)
}

func eqStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqPayload(a, b any) bool {
	fa, aOk := a.(*Fault)
	fb, bOk := b.(*Fault)
	if aOk && bOk {
		return fa.Equal(fb)
	}
	if aOk != bOk {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
