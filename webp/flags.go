package webp

// VP8X feature-flag bits, within the flag byte at offset 0 of a VP8X
// chunk's content.
const (
	flagICC   byte = 0x20 // bit 5
	flagAlpha byte = 0x10 // bit 4
	flagEXIF  byte = 0x08 // bit 3
	flagXMP   byte = 0x04 // bit 2
	flagAnim  byte = 0x02 // bit 1
)

// flagsFromWebP derives the VP8X feature-flag byte a WebP's chunks imply:
// ICC if it carries an ICCP chunk, EXIF if it carries an EXIF chunk, XMP
// if it carries an XMP chunk, animation if it carries an ANIM chunk, and
// alpha if it carries an ALPH chunk.
func flagsFromWebP(w *WebP) byte {
	var f byte
	if w.HasChunk(chunkICCP) {
		f |= flagICC
	}
	if w.HasChunk(chunkEXIF) {
		f |= flagEXIF
	}
	if w.HasChunk(chunkXMP) {
		f |= flagXMP
	}
	if w.HasChunk(chunkANIM) {
		f |= flagAnim
	}
	if w.HasChunk(chunkALPH) {
		f |= flagAlpha
	}
	return f
}
