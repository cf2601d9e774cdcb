// SPDX-License-Identifier: MIT

package integrals

import "log/slog"

// Option configures a PackedStore.
type Option func(*Options)

// Options holds the effective store configuration.
type Options struct {
	logger *slog.Logger
}

// WithLogger routes allocation and read diagnostics to l.
// Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("integrals: WithLogger: nil logger")
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
