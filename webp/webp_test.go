package webp

import (
	"bytes"
	"testing"

	"imgparts/riff"
)

func simpleVP8WebP(vp8Data []byte) []byte {
	vp8 := riff.NewChunk(chunkVP8, &riff.Data{Bytes: vp8Data})
	kind := webpID
	list := &riff.List{Kind: &kind, Subchunks: []*riff.Chunk{vp8}}
	c := riff.NewChunk(riffID, list)
	out, err := c.Bytes()
	if err != nil {
		panic(err)
	}
	return out
}

// A minimal key-frame VP8 bitstream header: 3-byte frame tag with bit 0
// clear (key frame), the 0x9D012A start code, then 14-bit width/height.
func vp8Header(width, height uint16) []byte {
	header := make([]byte, 10)
	header[0], header[1], header[2] = 0x00, 0x00, 0x00 // key frame tag
	header[3], header[4], header[5] = 0x9D, 0x01, 0x2A
	header[6] = byte(width)
	header[7] = byte(width >> 8)
	header[8] = byte(height)
	header[9] = byte(height >> 8)
	return header
}

func TestReadSimpleVP8RoundTrip(t *testing.T) {
	data := simpleVP8WebP(vp8Header(16, 9))

	w, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if w.Kind() != KindVP8 {
		t.Fatalf("got kind %v, want VP8", w.Kind())
	}
	width, height, ok := w.Dimensions()
	if !ok || width != 16 || height != 9 {
		t.Fatalf("got dimensions (%d, %d, %v), want (16, 9, true)", width, height, ok)
	}

	out, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestVP8LDimensions(t *testing.T) {
	// width-1=31 (->32), height-1=12 (->13), packed little-endian across
	// 4 bytes following the 0x2F signature.
	bits := uint32(31) | uint32(12)<<14
	header := []byte{
		vp8lSignature,
		byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24),
	}

	w16, h16, ok := dimensionsFromVP8L(header)
	if !ok || w16 != 32 || h16 != 13 {
		t.Fatalf("got (%d, %d, %v), want (32, 13, true)", w16, h16, ok)
	}
}

func TestSetICCProfileSynthesizesAndRemovesVP8X(t *testing.T) {
	data := simpleVP8WebP(vp8Header(16, 9))
	w, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	profile := []byte{0x01, 0x02, 0x03, 0x04}
	if err := w.SetICCProfile(profile); err != nil {
		t.Fatalf("SetICCProfile: %v", err)
	}
	if w.Kind() != KindVP8X {
		t.Fatalf("got kind %v after SetICCProfile, want VP8X", w.Kind())
	}
	if got := w.ICCProfile(); !bytes.Equal(got, profile) {
		t.Fatalf("ICCProfile mismatch: got %x, want %x", got, profile)
	}
	vp8x := w.ChunkByID(chunkVP8X)
	if vp8x == nil {
		t.Fatalf("expected synthesized VP8X chunk")
	}
	d := vp8x.Content().(*riff.Data)
	if d.Bytes[0]&flagICC == 0 {
		t.Fatalf("expected ICC flag set in synthesized VP8X")
	}

	if err := w.SetICCProfile(nil); err != nil {
		t.Fatalf("SetICCProfile(nil): %v", err)
	}
	if w.Kind() != KindVP8 {
		t.Fatalf("got kind %v after removing profile, want VP8 (synthesized VP8X should be removed)", w.Kind())
	}
}

func TestSetICCProfileKeepsUserAuthoredVP8X(t *testing.T) {
	vp8x := riff.NewChunk(chunkVP8X, &riff.Data{Bytes: make([]byte, 10)})
	vp8 := riff.NewChunk(chunkVP8, &riff.Data{Bytes: vp8Header(16, 9)})
	kind := webpID
	list := &riff.List{Kind: &kind, Subchunks: []*riff.Chunk{vp8x, vp8}}
	c := riff.NewChunk(riffID, list)
	data, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	w, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if err := w.SetICCProfile([]byte{0xAA}); err != nil {
		t.Fatalf("SetICCProfile: %v", err)
	}
	if err := w.SetICCProfile(nil); err != nil {
		t.Fatalf("SetICCProfile(nil): %v", err)
	}
	if w.Kind() != KindVP8X {
		t.Fatalf("got kind %v, want VP8X to survive since it wasn't synthesized by this package", w.Kind())
	}
}

func TestSetAndGetEXIF(t *testing.T) {
	data := simpleVP8WebP(vp8Header(16, 9))
	w, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	payload := []byte{0x4D, 0x4D, 0x00, 0x2A}
	if err := w.SetEXIF(payload); err != nil {
		t.Fatalf("SetEXIF: %v", err)
	}
	if got := w.EXIF(); !bytes.Equal(got, payload) {
		t.Fatalf("EXIF mismatch: got %x, want %x", got, payload)
	}

	if err := w.SetEXIF(nil); err != nil {
		t.Fatalf("SetEXIF(nil): %v", err)
	}
	if got := w.EXIF(); got != nil {
		t.Fatalf("expected no EXIF after removal, got %x", got)
	}
}

func TestEXIFStripsLegacyPreamble(t *testing.T) {
	data := simpleVP8WebP(vp8Header(16, 9))
	w, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	legacy := append([]byte(exifPrefix), 0x4D, 0x4D, 0x00, 0x2A)
	*w.ChunksMut() = append(w.Chunks(), riff.NewChunk(chunkEXIF, &riff.Data{Bytes: legacy}))

	if got := w.EXIF(); !bytes.Equal(got, []byte{0x4D, 0x4D, 0x00, 0x2A}) {
		t.Fatalf("expected stripped preamble, got %x", got)
	}
}

func TestIsWebP(t *testing.T) {
	if !IsWebP(simpleVP8WebP(vp8Header(1, 1))) {
		t.Fatalf("expected IsWebP to recognize a valid WebP buffer")
	}
	if IsWebP([]byte("not a webp")) {
		t.Fatalf("expected IsWebP to reject a non-WebP buffer")
	}
}
