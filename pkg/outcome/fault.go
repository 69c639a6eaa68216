package outcome

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	succeededMessage = "Operation succeeded"
	failedMessage    = "Operation failed"
)

// Done is the canonical payload of EmptySuccess. It is a plain comparable
// marker: two Done values are equal to each other and to nothing else.
type Done struct{}

func (Done) String() string {
	return succeededMessage
}

// Fault is the structured error wrapper raised at the two designated panic
// points (Result() on a failure and PanicWhenFail). It carries the failure's
// cause plus the optional title, message and stack trace side channels.
type Fault struct {
	err        any
	title      *string
	message    *string
	stackTrace any
}

func NewFault(err any, opts ...Option) *Fault {
	o := NewOptions(opts...)
	return &Fault{
		err:        err,
		title:      o.Title,
		message:    o.Message,
		stackTrace: o.StackTrace,
	}
}

func (f *Fault) Err() any {
	return f.err
}

func (f *Fault) Title() (string, bool) {
	if f.title == nil {
		return "", false
	}
	return *f.title, true
}

func (f *Fault) Message() (string, bool) {
	if f.message == nil {
		return "", false
	}
	return *f.message, true
}

func (f *Fault) StackTrace() any {
	return f.stackTrace
}

func (f *Fault) HasError() bool {
	return !IsNil(f.err)
}

func (f *Fault) HasTitle() bool {
	return f.title != nil
}

func (f *Fault) HasMessage() bool {
	return f.message != nil
}

func (f *Fault) HasStackTrace() bool {
	return !IsNil(f.stackTrace)
}

// Error renders the payload as
// "Fault" + "(<title>)" + ": <error>" + "\n<message>" + "\n<stackTrace>",
// each segment present only when its field is.
func (f *Fault) Error() string {
	var b strings.Builder
	b.WriteString("Fault")
	if f.HasTitle() {
		fmt.Fprintf(&b, "(%s)", *f.title)
	}
	if f.HasError() {
		fmt.Fprintf(&b, ": %v", f.err)
	}
	if f.HasMessage() {
		fmt.Fprintf(&b, "\n%s", *f.message)
	}
	if f.HasStackTrace() {
		fmt.Fprintf(&b, "\n%v", f.stackTrace)
	}
	return b.String()
}

// Unwrap exposes the cause to errors.Is/errors.As when it is an error.
func (f *Fault) Unwrap() error {
	if err, ok := f.err.(error); ok {
		return err
	}
	return nil
}

// Equal compares err, title and message; stack trace is excluded.
func (f *Fault) Equal(other *Fault) bool {
	if f == nil || other == nil {
		return f == other
	}
	return reflect.DeepEqual(f.err, other.err) &&
		eqStringPtr(f.title, other.title) &&
		eqStringPtr(f.message, other.message)
}
