package bloom

import "github.com/datatrails/go-datatrails-common/logger"

type Options struct {
	Strategy IndexStrategy
	Log      Logger
	Sparse   bool
}

type Option func(*Options)

// WithStrategy sets the index strategy. The default is DoubleHash{}.
func WithStrategy(s IndexStrategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger sets the logger. Without it the process logger is used if
// logger.New has been called, otherwise the filter does not log.
func WithLogger(log Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithSparseBits stores the bits in a compressed bitmap. Suited to very large
// filters that stay lightly filled; tests and sets are slower than the dense
// default.
func WithSparseBits() Option {
	return func(o *Options) {
		o.Sparse = true
	}
}

func newOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Strategy == nil {
		o.Strategy = DoubleHash{}
	}
	if o.Log == nil && logger.Sugar != nil {
		o.Log = logger.Sugar
	}
	return o
}
