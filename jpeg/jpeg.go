// Package jpeg parses and re-encodes the JPEG marker-segment container:
// start/end of image, application segments (including the multi-part
// APP2/ICC_PROFILE and APP1/EXIF conventions), and the entropy-coded scan
// following Start-of-Scan. It does not decode the entropy-coded data
// itself; that span is kept as an opaque byte tail.
package jpeg

import (
	"encoding/binary"
	"fmt"
	"io"

	"imgparts/encoder"
	"imgparts/internal/containererr"
)

const maxSegmentContentLen = 0xFFFF - 2 // u16::MAX - 2, the largest contents length a segment can encode

// Jpeg is the parsed representation of a JPEG marker stream.
type Jpeg struct {
	segments []*Segment
}

// New constructs a Jpeg from an explicit segment list. The first segment
// should be SOI and the last EOI, matching the invariants Read enforces.
func New(segments []*Segment) *Jpeg {
	return &Jpeg{segments: segments}
}

// Read parses data as a JPEG marker stream.
//
// Read fails with ErrMalformedJpeg if data doesn't begin with SOI, if a
// marker is truncated, if a length field is smaller than 2 or overruns the
// buffer, or if the entropy-coded scan following SOS has no terminating
// marker.
func Read(data []byte) (*Jpeg, error) {
	if len(data) < 2 || data[0] != lead || data[1] != SOI {
		return nil, fmt.Errorf("jpeg: %w: missing SOI", containererr.ErrMalformedJpeg)
	}

	segments := []*Segment{NewSegment(SOI, nil)}
	pos := 2

	for {
		m, err := readMarker(data, &pos)
		if err != nil {
			return nil, err
		}

		if isLengthless(m) {
			segments = append(segments, NewSegment(m, nil))
			if m == EOI {
				break
			}
			continue
		}

		if pos+2 > len(data) {
			return nil, fmt.Errorf("jpeg: %w: truncated length field for marker 0x%02X", containererr.ErrMalformedJpeg, m)
		}
		length := binary.BigEndian.Uint16(data[pos : pos+2])
		if length < 2 {
			return nil, fmt.Errorf("jpeg: %w: impossible length %d for marker 0x%02X", containererr.ErrMalformedJpeg, length, m)
		}
		pos += 2

		contentLen := int(length) - 2
		if pos+contentLen > len(data) {
			return nil, fmt.Errorf("jpeg: %w: segment for marker 0x%02X overruns buffer", containererr.ErrMalformedJpeg, m)
		}
		contents := data[pos : pos+contentLen]
		pos += contentLen

		if m != SOS {
			segments = append(segments, NewSegment(m, contents))
			continue
		}

		entropyStart := pos
		for {
			if pos >= len(data) {
				return nil, fmt.Errorf("jpeg: %w: entropy-coded scan has no terminating marker", containererr.ErrMalformedJpeg)
			}
			if data[pos] != lead {
				pos++
				continue
			}
			if pos+1 >= len(data) {
				return nil, fmt.Errorf("jpeg: %w: entropy-coded scan truncated mid marker", containererr.ErrMalformedJpeg)
			}
			next := data[pos+1]
			if next == zero || isRestart(next) {
				pos += 2
				continue
			}
			break
		}
		segments = append(segments, NewSegmentWithEntropy(m, contents, data[entropyStart:pos]))
	}

	return &Jpeg{segments: segments}, nil
}

// readMarker advances pos past a run of one or more 0xFF fill bytes and
// returns the following non-0xFF byte, the marker.
func readMarker(data []byte, pos *int) (byte, error) {
	if *pos >= len(data) || data[*pos] != lead {
		return 0, fmt.Errorf("jpeg: %w: expected marker lead byte", containererr.ErrMalformedJpeg)
	}
	for *pos < len(data) && data[*pos] == lead {
		*pos++
	}
	if *pos >= len(data) {
		return 0, fmt.Errorf("jpeg: %w: truncated marker", containererr.ErrMalformedJpeg)
	}
	m := data[*pos]
	*pos++
	return m, nil
}

// Segments returns the segments making up this Jpeg, in document order.
func (j *Jpeg) Segments() []*Segment { return j.segments }

// SegmentsMut returns a pointer to the segment slice, for callers that
// need to insert, remove, or reorder segments directly.
func (j *Jpeg) SegmentsMut() *[]*Segment { return &j.segments }

// SegmentByMarker returns the first segment with the given marker, or nil.
func (j *Jpeg) SegmentByMarker(marker byte) *Segment {
	for _, s := range j.segments {
		if s.marker == marker {
			return s
		}
	}
	return nil
}

// SegmentsByMarker returns every segment with the given marker, in
// document order.
func (j *Jpeg) SegmentsByMarker(marker byte) []*Segment {
	var out []*Segment
	for _, s := range j.segments {
		if s.marker == marker {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the total encoded size of this Jpeg.
func (j *Jpeg) Len() int {
	n := 0
	for _, s := range j.segments {
		n += s.LenWithEntropy()
	}
	return n
}

// EncodeAt implements encoder.Sequencer by delegating to each segment in
// turn.
func (j *Jpeg) EncodeAt(pos *int) []byte {
	p := *pos
	for _, s := range j.segments {
		if piece := s.EncodeAt(&p); piece != nil {
			return piece
		}
	}
	*pos = p
	return nil
}

// validate checks that every segment's contents fit the 16-bit length
// field they'll be encoded with.
func (j *Jpeg) validate() error {
	for _, s := range j.segments {
		if len(s.contents) > maxSegmentContentLen {
			return fmt.Errorf("jpeg: %w: segment 0x%02X contents of %d bytes exceeds %d",
				containererr.ErrTooLong, s.marker, len(s.contents), maxSegmentContentLen)
		}
	}
	return nil
}

// Encoder returns the piecewise byte sequence for this Jpeg.
func (j *Jpeg) Encoder() (encoder.Sequence, error) {
	if err := j.validate(); err != nil {
		return encoder.Sequence{}, err
	}
	return encoder.New(j), nil
}

// WriteTo encodes this Jpeg and writes it to w.
func (j *Jpeg) WriteTo(w io.Writer) (int64, error) {
	seq, err := j.Encoder()
	if err != nil {
		return 0, err
	}
	return seq.WriteTo(w)
}

// Bytes encodes this Jpeg into a single contiguous buffer.
func (j *Jpeg) Bytes() ([]byte, error) {
	seq, err := j.Encoder()
	if err != nil {
		return nil, err
	}
	return seq.Bytes(), nil
}
