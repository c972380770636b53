package feldman

import (
	"runtime"

	"github.com/hsiuhsiu/vss-go/pkg/vss/logging"
	"github.com/hsiuhsiu/vss-go/pkg/vss/shamir"
)

// Option configures a Scheme.
type Option func(*options)

type options struct {
	logger      logging.Logger
	parallelism int
}

func defaultOptions() options {
	return options{
		logger:      logging.Discard(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism caps the number of goroutines VerifyAll uses. Values below 1
// mean sequential verification.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

func (o options) shamirOptions() []shamir.Option {
	return []shamir.Option{shamir.WithLogger(o.logger)}
}
