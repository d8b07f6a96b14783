// Package riff parses and re-encodes the generic RIFF chunk container:
// 4-byte id, little-endian u32 length, then either a list of subchunks
// (RIFF, LIST, and seqt ids) or an opaque data payload, padded to an even
// length.
package riff

import (
	"encoding/binary"
	"fmt"
	"io"

	"imgparts/encoder"
	"imgparts/internal/containererr"
)

// maxContentLen is the largest length RIFF's 32-bit length field can
// hold.
const maxContentLen = 0xFFFFFFFF

// Chunk is one RIFF chunk: a 4-byte id plus content that is either a list
// of further chunks or an opaque data payload.
type Chunk struct {
	id      [4]byte
	content Content
}

// Content is the payload of a Chunk: either a List or a Data.
type Content interface {
	len() uint32
	encodeAt(pos *int) []byte
}

// List is a RIFF chunk's content when its id is one of the container
// kinds (RIFF, LIST, seqt): an optional 4-byte kind tag followed by zero
// or more subchunks.
type List struct {
	Kind      *[4]byte
	Subchunks []*Chunk
}

// Data is a RIFF chunk's content when its id isn't a container kind: an
// opaque byte payload.
type Data struct {
	Bytes []byte
}

// NewChunk constructs a Chunk with the given id and content.
func NewChunk(id [4]byte, content Content) *Chunk {
	return &Chunk{id: id, content: content}
}

// ID returns this chunk's 4-byte id.
func (c *Chunk) ID() [4]byte { return c.id }

// IDString returns ID as a string.
func (c *Chunk) IDString() string { return string(c.id[:]) }

// Content returns this chunk's content, a *List or a *Data.
func (c *Chunk) Content() Content { return c.content }

// SetContent replaces this chunk's content.
func (c *Chunk) SetContent(content Content) { c.content = content }

// Len returns the encoded size of this chunk: the 4-byte id, the 4-byte
// length field, the content, and a single padding byte if the content's
// length is odd.
func (c *Chunk) Len() int {
	n := 4 + 4 + int(c.content.len())
	n += n % 2
	return n
}

// EncodeAt implements encoder.Sequencer.
func (c *Chunk) EncodeAt(pos *int) []byte {
	if *pos == 0 {
		header := make([]byte, 0, 8)
		header = append(header, c.id[:]...)
		header = binary.LittleEndian.AppendUint32(header, c.content.len())
		return header
	}
	p := *pos - 1
	if piece := c.content.encodeAt(&p); piece != nil {
		return piece
	}
	*pos = p
	return nil
}

func (l *List) len() uint32 {
	var n uint32
	if l.Kind != nil {
		n += 4
	}
	for _, sub := range l.Subchunks {
		n += uint32(sub.Len())
	}
	return n
}

func (l *List) encodeAt(pos *int) []byte {
	p := *pos
	if l.Kind != nil {
		if p == 0 {
			kind := make([]byte, 4)
			copy(kind, l.Kind[:])
			return kind
		}
		p--
	}
	for _, sub := range l.Subchunks {
		if piece := sub.EncodeAt(&p); piece != nil {
			return piece
		}
	}
	*pos = p
	return nil
}

func (d *Data) len() uint32 { return uint32(len(d.Bytes)) }

func (d *Data) encodeAt(pos *int) []byte {
	switch *pos {
	case 0:
		*pos++
		return d.Bytes
	case 1:
		if len(d.Bytes)%2 == 1 {
			*pos++
			return []byte{0x00}
		}
	}
	*pos -= 1 + len(d.Bytes)%2
	return nil
}

// hasSubchunks reports whether id is one of the three container kinds
// RIFF parses recursively.
func hasSubchunks(id [4]byte) bool {
	s := string(id[:])
	return s == "RIFF" || s == "LIST" || s == "seqt"
}

// hasKind reports whether id's content begins with a 4-byte kind tag
// before its subchunks.
func hasKind(id [4]byte) bool {
	s := string(id[:])
	return s == "RIFF" || s == "LIST"
}

// Read parses data as a single RIFF chunk, recursing into subchunks for
// RIFF, LIST, and seqt ids.
//
// Read fails with ErrMalformedRiff if data is too short for a chunk
// header, or if a declared length overruns its container.
func Read(data []byte) (*Chunk, error) {
	pos := 0
	return readChunk(data, &pos, len(data))
}

func readChunk(data []byte, pos *int, limit int) (*Chunk, error) {
	if *pos+8 > limit {
		return nil, fmt.Errorf("riff: %w: truncated chunk header", containererr.ErrMalformedRiff)
	}
	var id [4]byte
	copy(id[:], data[*pos:*pos+4])
	length := binary.LittleEndian.Uint32(data[*pos+4 : *pos+8])
	*pos += 8

	end := *pos + int(length)
	if end < *pos || end > limit {
		return nil, fmt.Errorf("riff: %w: chunk %q length overruns container", containererr.ErrMalformedRiff, string(id[:]))
	}

	content, err := readContent(data, pos, end, id)
	if err != nil {
		return nil, err
	}

	if length%2 == 1 {
		if *pos >= limit {
			return nil, fmt.Errorf("riff: %w: chunk %q missing pad byte", containererr.ErrMalformedRiff, string(id[:]))
		}
		*pos++
	}

	return &Chunk{id: id, content: content}, nil
}

func readContent(data []byte, pos *int, end int, id [4]byte) (Content, error) {
	if !hasSubchunks(id) {
		// The pad byte, if any, is consumed by the caller after this
		// returns, not included in the Data payload.
		d := &Data{Bytes: data[*pos:end]}
		*pos = end
		return d, nil
	}

	var kind *[4]byte
	if hasKind(id) {
		if *pos+4 > end {
			return nil, fmt.Errorf("riff: %w: chunk %q missing kind tag", containererr.ErrMalformedRiff, string(id[:]))
		}
		var k [4]byte
		copy(k[:], data[*pos:*pos+4])
		kind = &k
		*pos += 4
	}

	var subchunks []*Chunk
	for *pos < end {
		sub, err := readChunk(data, pos, end)
		if err != nil {
			return nil, err
		}
		subchunks = append(subchunks, sub)
	}

	return &List{Kind: kind, Subchunks: subchunks}, nil
}

// Encoder returns the piecewise byte sequence for this Chunk.
func (c *Chunk) Encoder() (encoder.Sequence, error) {
	if err := c.validate(); err != nil {
		return encoder.Sequence{}, err
	}
	return encoder.New(c), nil
}

func (c *Chunk) validate() error {
	switch content := c.content.(type) {
	case *List:
		for _, sub := range content.Subchunks {
			if err := sub.validate(); err != nil {
				return err
			}
		}
	case *Data:
		if uint64(len(content.Bytes)) > maxContentLen {
			return fmt.Errorf("riff: %w: chunk %q data of %d bytes exceeds %d",
				containererr.ErrTooLong, c.IDString(), len(content.Bytes), maxContentLen)
		}
	}
	return nil
}

// WriteTo encodes this Chunk and writes it to w.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	seq, err := c.Encoder()
	if err != nil {
		return 0, err
	}
	return seq.WriteTo(w)
}

// Bytes encodes this Chunk into a single contiguous buffer.
func (c *Chunk) Bytes() ([]byte, error) {
	seq, err := c.Encoder()
	if err != nil {
		return nil, err
	}
	return seq.Bytes(), nil
}
