// SPDX-License-Identifier: MIT

package iwl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer buffers records and emits them in fixed-capacity buffers.
// Close must be called to write the final (lastbuf=1) buffer.
type Writer struct {
	dst      io.Writer
	capacity int
	buf      []byte
	count    int
	closed   bool
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := gatherOptions(opts...)

	return &Writer{dst: w, capacity: o.capacity, buf: make([]byte, bufferBytes(o.capacity))}
}

// Write appends one record, flushing a full buffer first when needed.
func (w *Writer) Write(rec Record) error {
	if w.closed {
		return ErrClosed
	}
	for _, l := range [4]int{rec.P, rec.Q, rec.R, rec.S} {
		if l < math.MinInt16 || l > math.MaxInt16 {
			return fmt.Errorf("iwl: label %d: %w", l, ErrLabelRange)
		}
	}
	if w.count == w.capacity {
		if err := w.flush(false); err != nil {
			return err
		}
	}

	le := binary.LittleEndian
	lab := headerBytes + 8*w.count
	val := headerBytes + 8*w.capacity + 8*w.count
	le.PutUint16(w.buf[lab:], uint16(int16(rec.P)))
	le.PutUint16(w.buf[lab+2:], uint16(int16(rec.Q)))
	le.PutUint16(w.buf[lab+4:], uint16(int16(rec.R)))
	le.PutUint16(w.buf[lab+6:], uint16(int16(rec.S)))
	le.PutUint64(w.buf[val:], math.Float64bits(rec.Value))
	w.count++

	return nil
}

// Close writes the final buffer. It is safe to call more than once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return w.flush(true)
}

func (w *Writer) flush(last bool) error {
	le := binary.LittleEndian
	var flag uint32
	if last {
		flag = 1
	}
	le.PutUint32(w.buf[0:], flag)
	le.PutUint32(w.buf[4:], uint32(w.count))
	if _, err := w.dst.Write(w.buf); err != nil {
		return fmt.Errorf("iwl: write buffer: %w", err)
	}
	clear(w.buf)
	w.count = 0

	return nil
}

// WriteTriangle writes the lower triangle of a symmetric matrix in Pack order.
func WriteTriangle(w io.Writer, tri []float64) error {
	if err := binary.Write(w, binary.LittleEndian, tri); err != nil {
		return fmt.Errorf("iwl: write triangle: %w", err)
	}

	return nil
}
