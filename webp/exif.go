package webp

import "imgparts/riff"

// EXIF returns this WebP's raw TIFF-formatted EXIF payload, or nil if it
// has no EXIF chunk.
//
// Some older encoders wrote EXIF chunks with the JPEG-style "Exif\0\0"
// preamble; if present, it's stripped. Current encoders write raw TIFF
// bytes with no preamble, which is what SetEXIF writes.
func (w *WebP) EXIF() []byte {
	c := w.ChunkByID(chunkEXIF)
	if c == nil {
		return nil
	}
	d, ok := c.Content().(*riff.Data)
	if !ok {
		return nil
	}
	if len(d.Bytes) >= len(exifPrefix) && string(d.Bytes[:len(exifPrefix)]) == exifPrefix {
		return d.Bytes[len(exifPrefix):]
	}
	return d.Bytes
}

// SetEXIF replaces this WebP's EXIF payload with raw TIFF bytes, no
// preamble. Passing nil removes the EXIF chunk without installing a new
// one.
//
// Installing a payload on a VP8 or VP8L WebP synthesizes a VP8X chunk;
// removing the last metadata chunk that required one removes that
// synthesized VP8X again.
func (w *WebP) SetEXIF(exif []byte) error {
	w.RemoveChunks(chunkEXIF)

	if exif != nil {
		chunk := riff.NewChunk(chunkEXIF, &riff.Data{Bytes: exif})
		chunks := w.Chunks()
		pos := len(chunks)
		for i, c := range chunks {
			if c.ID() == chunkXMP {
				pos = i
				break
			}
		}
		*w.ChunksMut() = append(chunks[:pos:pos], append([]*riff.Chunk{chunk}, chunks[pos:]...)...)
	}

	w.convertKind()
	return nil
}
