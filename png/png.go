package png

import (
	"encoding/binary"
	"fmt"
	"io"

	"imgparts/encoder"
	"imgparts/internal/containererr"
)

const maxChunkDataLen = 0x7FFFFFFF // 2^31 - 1, the largest length PNG's signed 32-bit length field can hold

// Png is the parsed representation of a PNG chunk stream.
type Png struct {
	chunks []*Chunk
}

// New constructs a Png from an explicit chunk list. The first chunk
// should be IHDR and the last IEND, matching the invariants Read enforces.
func New(chunks []*Chunk) *Png {
	return &Png{chunks: chunks}
}

// Read parses data as a PNG chunk stream.
//
// Read is permissive the way a decoder has to be: a chunk whose CRC
// doesn't match its kind and data is kept rather than rejected, and any
// bytes following IEND are discarded rather than treated as an error.
// Read fails with ErrMalformedPng only if the signature is missing, the
// first chunk isn't IHDR, a chunk header or CRC is truncated, or a chunk's
// declared length overruns the buffer.
func Read(data []byte) (*Png, error) {
	if len(data) < 8 || [8]byte(data[:8]) != Signature {
		return nil, fmt.Errorf("png: %w: missing signature", containererr.ErrMalformedPng)
	}
	pos := 8

	var chunks []*Chunk
	for {
		if pos+8 > len(data) {
			return nil, fmt.Errorf("png: %w: truncated chunk header", containererr.ErrMalformedPng)
		}
		length := binary.BigEndian.Uint32(data[pos : pos+4])
		var kind [4]byte
		copy(kind[:], data[pos+4:pos+8])
		pos += 8

		if len(chunks) == 0 && string(kind[:]) != "IHDR" {
			return nil, fmt.Errorf("png: %w: first chunk is %q, not IHDR", containererr.ErrMalformedPng, string(kind[:]))
		}

		end := pos + int(length)
		if end < pos || end > len(data) {
			return nil, fmt.Errorf("png: %w: chunk %q length overruns buffer", containererr.ErrMalformedPng, string(kind[:]))
		}
		chunkData := data[pos:end]
		pos = end

		if pos+4 > len(data) {
			return nil, fmt.Errorf("png: %w: truncated CRC for chunk %q", containererr.ErrMalformedPng, string(kind[:]))
		}
		pos += 4 // CRC is recomputed on encode, not retained or verified

		chunks = append(chunks, NewChunk(kind, chunkData))
		if string(kind[:]) == "IEND" {
			break
		}
	}

	return &Png{chunks: chunks}, nil
}

// Chunks returns the chunks making up this Png, in document order.
func (p *Png) Chunks() []*Chunk { return p.chunks }

// ChunksMut returns a pointer to the chunk slice, for callers that need
// to insert, remove, or reorder chunks directly.
func (p *Png) ChunksMut() *[]*Chunk { return &p.chunks }

// ChunkByKind returns the first chunk with the given kind, or nil.
func (p *Png) ChunkByKind(kind string) *Chunk {
	for _, c := range p.chunks {
		if c.KindString() == kind {
			return c
		}
	}
	return nil
}

// ChunksByKind returns every chunk with the given kind, in document
// order.
func (p *Png) ChunksByKind(kind string) []*Chunk {
	var out []*Chunk
	for _, c := range p.chunks {
		if c.KindString() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the total encoded size of this Png, signature included.
func (p *Png) Len() int {
	n := 8
	for _, c := range p.chunks {
		n += c.Len()
	}
	return n
}

// EncodeAt implements encoder.Sequencer. Position 0 is the signature;
// every later position delegates to the chunk list.
func (p *Png) EncodeAt(pos *int) []byte {
	if *pos == 0 {
		sig := make([]byte, 8)
		copy(sig, Signature[:])
		return sig
	}
	q := *pos - 1
	for _, c := range p.chunks {
		if piece := c.EncodeAt(&q); piece != nil {
			return piece
		}
	}
	*pos = q
	return nil
}

func (p *Png) validate() error {
	for _, c := range p.chunks {
		if len(c.data) > maxChunkDataLen {
			return fmt.Errorf("png: %w: chunk %q data of %d bytes exceeds %d",
				containererr.ErrTooLong, c.KindString(), len(c.data), maxChunkDataLen)
		}
	}
	return nil
}

// Encoder returns the piecewise byte sequence for this Png.
func (p *Png) Encoder() (encoder.Sequence, error) {
	if err := p.validate(); err != nil {
		return encoder.Sequence{}, err
	}
	return encoder.New(p), nil
}

// WriteTo encodes this Png and writes it to w.
func (p *Png) WriteTo(w io.Writer) (int64, error) {
	seq, err := p.Encoder()
	if err != nil {
		return 0, err
	}
	return seq.WriteTo(w)
}

// Bytes encodes this Png into a single contiguous buffer.
func (p *Png) Bytes() ([]byte, error) {
	seq, err := p.Encoder()
	if err != nil {
		return nil, err
	}
	return seq.Bytes(), nil
}
