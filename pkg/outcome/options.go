package outcome

// Options collects the optional side-channel fields a constructor may set.
// Title and Message stay absent (nil) unless explicitly provided; an empty
// string is a value, not absence.
type Options struct {
	Title      *string
	Message    *string
	StackTrace any
	Err        any
}

type Option func(*Options)

func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = &title
	}
}

func WithMessage(message string) Option {
	return func(o *Options) {
		o.Message = &message
	}
}

func WithStackTrace(trace any) Option {
	return func(o *Options) {
		o.StackTrace = trace
	}
}

// WithError overrides the error payload in helpers that build failures on
// the caller's behalf, such as solo.Ensure.
func WithError(err any) Option {
	return func(o *Options) {
		o.Err = err
	}
}
