package bitvec

type options struct {
	logger      *Logger
	minCapacity int
}

// Option configures a Vec at construction.
type Option func(*options)

// WithLogger sets the logger receiving allocation events at debug level.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noop
		}
		o.logger = l
	}
}

// WithMinCapacity sets the capacity, in bits, allocated on the first growth.
func WithMinCapacity(bits int) Option {
	return func(o *options) {
		if bits > 0 {
			o.minCapacity = bits
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: noop}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
