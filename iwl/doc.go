// Package iwl reads and writes integral streams: sequences of
// (p,q,r,s,value) records grouped into fixed-capacity buffers.
//
// Layout (little-endian), repeated until a buffer with lastbuf=1:
//
//	int32   lastbuf            1 on the final buffer, 0 otherwise
//	int32   count              records used in this buffer (≤ capacity)
//	int16   labels[4*capacity] p,q,r,s per record; unused slots are zero
//	float64 values[capacity]   one value per record; unused slots are zero
//
// The first label of a record may carry a negative sign as a flag; readers
// take its absolute value.
//
// One-electron data is a separate, unbuffered layout: n*(n+1)/2 float64
// values of the lower triangle in Pack order (see ReadTriangle).
//
// The reader validates framing only (truncation, impossible counts). It does
// not check that labels fall inside any basis; that belongs to the consumer.
package iwl
