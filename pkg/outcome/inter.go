package outcome

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry a result or an
// untyped error payload
type WithFailure[T any] interface {
	ResultProvider[T]
	// Err returns the error payload if the operation failed
	Err() any
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithContext extends WithFailure with the optional title/message channels
type WithContext[T any] interface {
	WithFailure[T]
	// Title returns the optional human-readable title
	Title() (string, bool)
	// Message returns the optional human-readable message
	Message() (string, bool)
}
