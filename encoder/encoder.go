// Package encoder provides the lazy, piecewise byte sequence used to
// serialize every container in this module.
//
// Encoding a container never builds one big contiguous buffer unless the
// caller explicitly asks for it via Bytes. Instead each container exposes a
// Sequencer, and a Sequence walks its EncodeAt piece by piece so a caller can
// stream straight to a socket or file without holding the whole output in
// memory twice.
package encoder

import "io"

// Sequencer produces the encoded form of a value as an ordered list of
// pieces addressed by position. pos is both input and output: on a hit the
// piece at pos is returned and pos is left alone; on a miss EncodeAt
// decrements pos by however many pieces it owns and returns nil, letting a
// parent container walk through its children's pieces without knowing how
// many each one has.
type Sequencer interface {
	EncodeAt(pos *int) []byte
	Len() int
}

// Sequence is an iterator over the pieces produced by a Sequencer. Its zero
// value is not usable; construct one with New.
type Sequence struct {
	inner Sequencer
	pos   int
}

// New wraps s in a Sequence ready to be iterated, written, or materialized.
func New(s Sequencer) Sequence {
	return Sequence{inner: s}
}

// Next returns the next piece, or nil, false once the sequence is exhausted.
func (e *Sequence) Next() ([]byte, bool) {
	pos := e.pos
	piece := e.inner.EncodeAt(&pos)
	if piece == nil {
		return nil, false
	}
	e.pos++
	return piece, true
}

// Len reports the total encoded length without materializing any piece.
func (e Sequence) Len() int {
	return e.inner.Len()
}

// WriteTo writes every piece to w in order, returning the number of bytes
// written. It implements io.WriterTo.
func (e Sequence) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for {
		piece, ok := e.Next()
		if !ok {
			return n, nil
		}
		written, err := w.Write(piece)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
}

// Bytes concatenates every piece into a single contiguous buffer. Prefer
// WriteTo when the destination is an io.Writer, since Bytes pays for a
// second copy of the whole output.
func (e Sequence) Bytes() []byte {
	out := make([]byte, 0, e.Len())
	for {
		piece, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, piece...)
	}
}
