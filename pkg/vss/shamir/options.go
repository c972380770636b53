package shamir

import "github.com/hsiuhsiu/vss-go/pkg/vss/logging"

// Option configures a Scheme.
type Option func(*options)

type options struct {
	logger logging.Logger
}

func defaultOptions() options {
	return options{logger: logging.Discard()}
}

// WithLogger sets the logger used for debug records. Nil keeps the default,
// which discards everything.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
