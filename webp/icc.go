package webp

import "imgparts/riff"

// ICCProfile returns this WebP's ICC profile, or nil if it has no ICCP
// chunk.
func (w *WebP) ICCProfile() []byte {
	c := w.ChunkByID(chunkICCP)
	if c == nil {
		return nil
	}
	d, ok := c.Content().(*riff.Data)
	if !ok {
		return nil
	}
	return d.Bytes
}

// SetICCProfile replaces this WebP's ICC profile. Passing nil removes the
// ICCP chunk without installing a new one.
//
// Installing a profile on a VP8 or VP8L WebP synthesizes a VP8X chunk;
// removing the last metadata chunk that required one removes that
// synthesized VP8X again.
func (w *WebP) SetICCProfile(profile []byte) error {
	w.RemoveChunks(chunkICCP)

	if profile != nil {
		pos := w.bitstreamInsertPos()
		chunk := riff.NewChunk(chunkICCP, &riff.Data{Bytes: profile})
		chunks := w.Chunks()
		if pos > len(chunks) {
			pos = len(chunks)
		}
		*w.ChunksMut() = append(chunks[:pos:pos], append([]*riff.Chunk{chunk}, chunks[pos:]...)...)
	}

	w.convertKind()
	return nil
}

// bitstreamInsertPos is where a freshly built ICCP chunk goes: right
// after the VP8X/VP8L header chunk if one exists, else at the front
// (ahead of the VP8 bitstream).
func (w *WebP) bitstreamInsertPos() int {
	for i, c := range w.Chunks() {
		if c.ID() == chunkVP8L || c.ID() == chunkVP8X {
			return i + 1
		}
	}
	return 0
}
