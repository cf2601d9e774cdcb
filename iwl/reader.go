// SPDX-License-Identifier: MIT

package iwl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Reader yields records from an integral stream.
type Reader struct {
	src      *bufio.Reader
	capacity int
	buf      []byte

	count   int  // records in the current buffer
	next    int  // next record to return from the current buffer
	last    bool // current buffer is the final one
	loaded  bool
	records int
}

// NewReader wraps r. The first buffer is read lazily by Next.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := gatherOptions(opts...)

	return &Reader{
		src:      bufio.NewReader(r),
		capacity: o.capacity,
		buf:      make([]byte, bufferBytes(o.capacity)),
	}
}

// Next returns the next record, or io.EOF after the final buffer is drained.
// A stream that ends before a lastbuf=1 buffer yields io.ErrUnexpectedEOF.
func (r *Reader) Next() (Record, error) {
	for !r.loaded || r.next >= r.count {
		if r.loaded && r.last {
			return Record{}, io.EOF
		}
		if err := r.fetch(); err != nil {
			return Record{}, err
		}
	}

	le := binary.LittleEndian
	lab := headerBytes + 8*r.next
	val := headerBytes + 8*r.capacity + 8*r.next
	p := int(int16(le.Uint16(r.buf[lab:])))
	if p < 0 {
		p = -p
	}
	rec := Record{
		P:     p,
		Q:     int(int16(le.Uint16(r.buf[lab+2:]))),
		R:     int(int16(le.Uint16(r.buf[lab+4:]))),
		S:     int(int16(le.Uint16(r.buf[lab+6:]))),
		Value: math.Float64frombits(le.Uint64(r.buf[val:])),
	}
	r.next++
	r.records++

	return rec, nil
}

// Records returns how many records Next has returned so far.
func (r *Reader) Records() int { return r.records }

func (r *Reader) fetch() error {
	if _, err := io.ReadFull(r.src, r.buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("iwl: read buffer: %w", err)
	}
	le := binary.LittleEndian
	last := int32(le.Uint32(r.buf[0:]))
	count := int32(le.Uint32(r.buf[4:]))
	if count < 0 || int(count) > r.capacity {
		return fmt.Errorf("iwl: count=%d capacity=%d: %w", count, r.capacity, ErrCorruptBuffer)
	}
	r.last = last != 0
	r.count = int(count)
	r.next = 0
	r.loaded = true

	return nil
}

// ReadTriangle reads the n*(n+1)/2 lower-triangle values of a symmetric
// n×n one-electron matrix.
func ReadTriangle(r io.Reader, n int) ([]float64, error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]float64, n*(n+1)/2)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("iwl: read triangle: %w", err)
	}

	return out, nil
}
