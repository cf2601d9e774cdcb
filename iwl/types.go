// SPDX-License-Identifier: MIT

package iwl

// DefaultCapacity is the number of records per buffer.
const DefaultCapacity = 2980

const headerBytes = 8

// Record is one integral (pq|rs) = Value.
type Record struct {
	P, Q, R, S int
	Value      float64
}

// Option configures a Reader or Writer.
type Option func(*Options)

// Options holds the effective stream configuration.
type Options struct {
	capacity int
}

// WithCapacity sets the number of records per buffer. Reader and writer of
// one stream must agree on it. Panics on non-positive values (programmer error).
func WithCapacity(n int) Option {
	if n <= 0 {
		panic(ErrBufferSize.Error())
	}

	return func(o *Options) { o.capacity = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{capacity: DefaultCapacity}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func bufferBytes(capacity int) int {
	return headerBytes + 8*capacity + 8*capacity // 4 int16 labels + 1 float64
}
