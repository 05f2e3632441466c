package tensorcanon

import "runtime"

type options struct {
	logger      *Logger
	concurrency int
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Option configures a Canonicalizer.
type Option func(*options)

// WithLogger configures the logger used by batch operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithConcurrency bounds how many normalizations run in parallel during
// batch operations. Values below 1 fall back to GOMAXPROCS.
//
// Every normalization is an independent pure function, so the bound only
// trades memory and scheduling overhead against throughput.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}
