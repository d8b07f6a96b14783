// Package webp parses and re-encodes WebP's logical chunk layout on top of
// the generic RIFF container: the VP8/VP8L bitstream chunks, the optional
// VP8X extended-feature header, and the ICCP/EXIF/XMP metadata chunks.
package webp

import (
	"fmt"
	"io"

	"imgparts/encoder"
	"imgparts/internal/containererr"
	"imgparts/riff"
)

var (
	chunkALPH = [4]byte{'A', 'L', 'P', 'H'}
	chunkANIM = [4]byte{'A', 'N', 'I', 'M'}
	chunkANMF = [4]byte{'A', 'N', 'M', 'F'}
	chunkEXIF = [4]byte{'E', 'X', 'I', 'F'}
	chunkICCP = [4]byte{'I', 'C', 'C', 'P'}
	chunkVP8  = [4]byte{'V', 'P', '8', ' '}
	chunkVP8L = [4]byte{'V', 'P', '8', 'L'}
	chunkVP8X = [4]byte{'V', 'P', '8', 'X'}
	chunkXMP  = [4]byte{'X', 'M', 'P', ' '}

	riffID = [4]byte{'R', 'I', 'F', 'F'}
	webpID = [4]byte{'W', 'E', 'B', 'P'}
)

// exifPrefix is the 6-byte preamble historically found inside WebP EXIF
// chunks, carried over from the JPEG APP1 convention. Current encoders
// write raw TIFF bytes with no preamble; on read, the prefix is stripped
// if present and left alone if absent.
const exifPrefix = "Exif\x00\x00"

// Kind identifies which of VP8, VP8L, or VP8X layout a WebP uses.
type Kind int

const (
	KindVP8 Kind = iota
	KindVP8L
	KindVP8X
)

func (k Kind) String() string {
	switch k {
	case KindVP8:
		return "VP8"
	case KindVP8L:
		return "VP8L"
	case KindVP8X:
		return "VP8X"
	default:
		return "unknown"
	}
}

// WebP is the parsed representation of a WebP image: a RIFF chunk whose
// content is a "WEBP"-kinded list of subchunks.
type WebP struct {
	riff *riff.Chunk

	// synthesizedVP8X records whether this WebP's VP8X chunk, if any, was
	// built by SetICCProfile/SetEXIF rather than present in the source
	// bytes. Only a synthesized VP8X is removed once it's no longer
	// needed; one that was already there is left alone.
	synthesizedVP8X bool
}

// New wraps a riff.Chunk as a WebP.
//
// New fails with ErrMalformedRiff if the chunk's content isn't a list or
// the list's kind isn't "WEBP".
func New(c *riff.Chunk) (*WebP, error) {
	list, ok := c.Content().(*riff.List)
	if !ok || list.Kind == nil || *list.Kind != webpID {
		return nil, fmt.Errorf("webp: %w: not a WEBP-kinded RIFF list", containererr.ErrMalformedRiff)
	}
	return &WebP{riff: c}, nil
}

// Read parses data as a WebP image.
func Read(data []byte) (*WebP, error) {
	c, err := riff.Read(data)
	if err != nil {
		return nil, err
	}
	if c.ID() != riffID {
		return nil, fmt.Errorf("webp: %w: missing RIFF id", containererr.ErrMalformedRiff)
	}
	return New(c)
}

// IsWebP reports whether data's leading bytes match the RIFF/WEBP magic:
// "RIFF" at offset 0 and "WEBP" at offset 8.
func IsWebP(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

func (w *WebP) list() *riff.List {
	return w.riff.Content().(*riff.List)
}

// Chunks returns this WebP's inner chunks, in document order.
func (w *WebP) Chunks() []*riff.Chunk { return w.list().Subchunks }

// ChunksMut returns a pointer to the inner chunk slice, for callers that
// need to insert, remove, or reorder chunks directly.
func (w *WebP) ChunksMut() *[]*riff.Chunk { return &w.list().Subchunks }

// ChunkByID returns the first inner chunk with the given id, or nil.
func (w *WebP) ChunkByID(id [4]byte) *riff.Chunk {
	for _, c := range w.Chunks() {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// HasChunk reports whether this WebP has an inner chunk with the given
// id.
func (w *WebP) HasChunk(id [4]byte) bool {
	return w.ChunkByID(id) != nil
}

// RemoveChunks removes every inner chunk with the given id.
func (w *WebP) RemoveChunks(id [4]byte) {
	chunks := w.Chunks()
	kept := chunks[:0]
	for _, c := range chunks {
		if c.ID() != id {
			kept = append(kept, c)
		}
	}
	*w.ChunksMut() = kept
}

// Kind reports which of VP8, VP8L, or VP8X layout this WebP currently
// uses: VP8X if it has a VP8X chunk, else VP8L if it has a VP8L chunk,
// else VP8.
func (w *WebP) Kind() Kind {
	switch {
	case w.HasChunk(chunkVP8X):
		return KindVP8X
	case w.HasChunk(chunkVP8L):
		return KindVP8L
	default:
		return KindVP8
	}
}

// inferredKind is the Kind this WebP's chunks require: VP8X if it carries
// ICCP, EXIF, XMP, ALPH, or ANIM, else whatever its bitstream chunk is.
func (w *WebP) inferredKind() Kind {
	if w.HasChunk(chunkICCP) || w.HasChunk(chunkEXIF) || w.HasChunk(chunkXMP) ||
		w.HasChunk(chunkALPH) || w.HasChunk(chunkANIM) {
		return KindVP8X
	}
	if w.HasChunk(chunkVP8L) {
		return KindVP8L
	}
	return KindVP8
}

// Dimensions returns this WebP's picture width and height.
//
// If a VP8X chunk is present, the dimensions are the canvas size it
// declares. Otherwise they're read from the VP8 or VP8L bitstream
// header.
func (w *WebP) Dimensions() (width, height uint32, ok bool) {
	if vp8x := w.ChunkByID(chunkVP8X); vp8x != nil {
		if d, isData := vp8x.Content().(*riff.Data); isData && len(d.Bytes) >= 10 {
			wMinus1 := u24le(d.Bytes[4:7])
			hMinus1 := u24le(d.Bytes[7:10])
			return wMinus1 + 1, hMinus1 + 1, true
		}
	}
	if vp8 := w.ChunkByID(chunkVP8); vp8 != nil {
		if d, isData := vp8.Content().(*riff.Data); isData {
			if w16, h16, bok := dimensionsFromVP8(d.Bytes); bok {
				return uint32(w16), uint32(h16), true
			}
		}
	}
	if vp8l := w.ChunkByID(chunkVP8L); vp8l != nil {
		if d, isData := vp8l.Content().(*riff.Data); isData {
			if w16, h16, bok := dimensionsFromVP8L(d.Bytes); bok {
				return uint32(w16), uint32(h16), true
			}
		}
	}
	return 0, 0, false
}

func u24le(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func u24leBytes(v uint32) [3]byte {
	return [3]byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

// convertKind brings this WebP's VP8X chunk in line with what its
// chunks now require: synthesizing one if newly needed, refreshing its
// flags if one already exists and is still needed, or, once it is no
// longer needed, removing it if it was synthesized by this package and
// otherwise refreshing its flags.
func (w *WebP) convertKind() {
	current := w.Kind()
	wanted := w.inferredKind()

	if current == KindVP8X && wanted == KindVP8X {
		w.refreshVP8XFlags()
		return
	}
	if current == KindVP8X && wanted != KindVP8X {
		if w.synthesizedVP8X {
			w.RemoveChunks(chunkVP8X)
			w.synthesizedVP8X = false
		} else {
			w.refreshVP8XFlags()
		}
		return
	}
	if wanted == KindVP8X {
		w.synthesizeVP8X()
	}
}

func (w *WebP) refreshVP8XFlags() {
	vp8x := w.ChunkByID(chunkVP8X)
	if vp8x == nil {
		return
	}
	d, ok := vp8x.Content().(*riff.Data)
	if !ok || len(d.Bytes) == 0 {
		return
	}
	d.Bytes[0] = flagsFromWebP(w)
}

func (w *WebP) synthesizeVP8X() {
	width, height, ok := w.Dimensions()
	if !ok {
		return
	}

	body := make([]byte, 10)
	body[0] = flagsFromWebP(w)
	wBytes := u24leBytes(width - 1)
	hBytes := u24leBytes(height - 1)
	copy(body[4:7], wBytes[:])
	copy(body[7:10], hBytes[:])

	// VP8X must be the first inner chunk.
	chunk := riff.NewChunk(chunkVP8X, &riff.Data{Bytes: body})
	chunks := w.Chunks()
	*w.ChunksMut() = append([]*riff.Chunk{chunk}, chunks...)
	w.synthesizedVP8X = true
}

// Len returns the total encoded size of this WebP.
func (w *WebP) Len() int { return w.riff.Len() }

// EncodeAt implements encoder.Sequencer by delegating to the inner RIFF
// chunk.
func (w *WebP) EncodeAt(pos *int) []byte { return w.riff.EncodeAt(pos) }

// Encoder returns the piecewise byte sequence for this WebP.
func (w *WebP) Encoder() (encoder.Sequence, error) {
	seq, err := w.riff.Encoder()
	if err != nil {
		return encoder.Sequence{}, err
	}
	return seq, nil
}

// WriteTo encodes this WebP and writes it to w2.
func (w *WebP) WriteTo(w2 io.Writer) (int64, error) {
	seq, err := w.Encoder()
	if err != nil {
		return 0, err
	}
	return seq.WriteTo(w2)
}

// Bytes encodes this WebP into a single contiguous buffer.
func (w *WebP) Bytes() ([]byte, error) {
	seq, err := w.Encoder()
	if err != nil {
		return nil, err
	}
	return seq.Bytes(), nil
}
