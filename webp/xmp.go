package webp

import "imgparts/riff"

// XMP returns this WebP's raw XMP packet, or nil if it has no XMP chunk.
// WebP carries XMP as a raw passthrough with no wrapping, unlike EXIF's
// historical preamble.
func (w *WebP) XMP() []byte {
	c := w.ChunkByID(chunkXMP)
	if c == nil {
		return nil
	}
	d, ok := c.Content().(*riff.Data)
	if !ok {
		return nil
	}
	return d.Bytes
}

// SetXMP replaces this WebP's XMP packet. Passing nil removes the XMP
// chunk without installing a new one.
func (w *WebP) SetXMP(xmp []byte) error {
	w.RemoveChunks(chunkXMP)

	if xmp != nil {
		chunk := riff.NewChunk(chunkXMP, &riff.Data{Bytes: xmp})
		*w.ChunksMut() = append(w.Chunks(), chunk)
	}

	w.convertKind()
	return nil
}
