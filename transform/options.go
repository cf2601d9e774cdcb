// SPDX-License-Identifier: MIT

package transform

import (
	"log/slog"
	"math"
)

const (
	// DefaultOrthonormalityEps disables the coefficient check when zero.
	DefaultOrthonormalityEps = 0.0
)

const (
	panicNilLogger  = "transform: WithLogger: nil logger"
	panicEpsInvalid = "transform: WithOrthonormalityCheck: eps must be finite and > 0"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the effective engine configuration.
type Options struct {
	logger   *slog.Logger
	orthoEps float64 // > 0 enables the CᵀC == I check in NewEngine
}

// WithLogger routes progress diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithOrthonormalityCheck makes NewEngine reject coefficient blocks whose
// columns are not orthonormal within eps. Panics on non-positive or
// non-finite eps.
func WithOrthonormalityCheck(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.orthoEps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:   slog.New(slog.DiscardHandler),
		orthoEps: DefaultOrthonormalityEps,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
