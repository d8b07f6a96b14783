// Package png parses and re-encodes the PNG chunk stream: the 8-byte
// signature followed by length-prefixed, CRC-checked chunks, including the
// iCCP (compressed ICC profile) and eXIf (raw EXIF) conventions.
package png

import (
	"encoding/binary"
	"hash/crc32"
)

// Signature is the fixed 8-byte sequence that opens every PNG stream.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Chunk is one length-prefixed, CRC-checked chunk of a Png's stream.
type Chunk struct {
	kind [4]byte
	data []byte
}

// NewChunk constructs a Chunk with the given 4-byte kind and data.
func NewChunk(kind [4]byte, data []byte) *Chunk {
	return &Chunk{kind: kind, data: data}
}

// Kind returns the chunk's 4-byte type code, e.g. "IHDR" or "iCCP".
func (c *Chunk) Kind() [4]byte { return c.kind }

// KindString returns Kind as a string, for comparisons and logging.
func (c *Chunk) KindString() string { return string(c.kind[:]) }

// Data returns the chunk's payload, excluding length, kind, and CRC.
func (c *Chunk) Data() []byte { return c.data }

// IsCritical reports whether this chunk's type code marks it as critical,
// that is, whether its first letter is uppercase. The critical chunks PNG
// itself defines are IHDR, PLTE, IDAT, and IEND.
func (c *Chunk) IsCritical() bool {
	return c.kind[0] >= 'A' && c.kind[0] <= 'Z'
}

// Len returns the encoded size of this chunk: 4-byte length, 4-byte kind,
// the data itself, and a 4-byte CRC.
func (c *Chunk) Len() int {
	return 4 + 4 + len(c.data) + 4
}

// EncodeAt implements encoder.Sequencer. A chunk is encoded as a single
// contiguous piece; the CRC is always recomputed, never carried over from
// a parse.
func (c *Chunk) EncodeAt(pos *int) []byte {
	if *pos != 0 {
		*pos--
		return nil
	}

	out := make([]byte, 0, c.Len())
	out = binary.BigEndian.AppendUint32(out, uint32(len(c.data)))
	out = append(out, c.kind[:]...)
	out = append(out, c.data...)

	crc := crc32.NewIEEE()
	crc.Write(c.kind[:])
	crc.Write(c.data)
	out = binary.BigEndian.AppendUint32(out, crc.Sum32())

	return out
}
