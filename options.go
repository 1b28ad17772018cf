package mercer

import "log/slog"

type options struct {
	bias   float64
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		bias:   0,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures machine construction.
type Option func(*options)

// WithBias sets the additive intercept applied to every prediction.
// The default is 0.
func WithBias(b float64) Option {
	return func(o *options) {
		o.bias = b
	}
}

// WithLogger sets the structured logger used for debug output.
//
// If nil is passed, logging is disabled (the default).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
