package jpeg

import "encoding/binary"

// Segment is one marker segment of a Jpeg's stream: a marker byte, its
// contents (empty for length-less markers), and - for the Start-of-Scan
// segment only - the entropy-coded bytes that follow it up to the next
// real marker.
type Segment struct {
	marker   byte
	contents []byte
	entropy  []byte
}

// NewSegment constructs a Segment with no entropy tail.
func NewSegment(marker byte, contents []byte) *Segment {
	return &Segment{marker: marker, contents: contents}
}

// NewSegmentWithEntropy constructs a Segment carrying an entropy-coded
// tail. Only meaningful for the SOS marker.
func NewSegmentWithEntropy(marker byte, contents, entropy []byte) *Segment {
	return &Segment{marker: marker, contents: contents, entropy: entropy}
}

// Marker returns the marker byte (without the 0xFF lead).
func (s *Segment) Marker() byte { return s.marker }

// Contents returns the segment's content bytes, excluding the 2-byte
// length field that precedes them on the wire.
func (s *Segment) Contents() []byte { return s.contents }

// Entropy returns the entropy-coded bytes following a Start-of-Scan
// segment, or nil for every other marker.
func (s *Segment) Entropy() []byte { return s.entropy }

// HasEntropy reports whether this segment carries entropy-coded data.
func (s *Segment) HasEntropy() bool { return len(s.entropy) > 0 }

// Len returns the encoded size of this segment, entropy excluded: the
// marker (2 bytes) plus the length field (2 bytes, if this marker carries
// one) plus the content length.
func (s *Segment) Len() int {
	n := 2 + len(s.contents)
	if hasLength(s.marker) {
		n += 2
	}
	return n
}

// LenWithEntropy returns Len plus the length of the entropy-coded tail.
func (s *Segment) LenWithEntropy() int {
	return s.Len() + len(s.entropy)
}

// EncodeAt implements encoder.Sequencer. A segment is at most three
// pieces: the marker+length header, the contents (if non-empty), and the
// entropy tail (if non-empty).
func (s *Segment) EncodeAt(pos *int) []byte {
	p := *pos
	if p == 0 {
		header := make([]byte, 0, 4)
		header = append(header, lead, s.marker)
		if hasLength(s.marker) {
			header = binary.BigEndian.AppendUint16(header, uint16(len(s.contents)+2))
		}
		return header
	}
	p--

	if len(s.contents) > 0 {
		if p == 0 {
			return s.contents
		}
		p--
	}

	if len(s.entropy) > 0 {
		if p == 0 {
			return s.entropy
		}
		p--
	}

	*pos = p
	return nil
}
