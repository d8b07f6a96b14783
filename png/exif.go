package png

// EXIF returns this Png's raw TIFF-formatted EXIF payload, or nil if it
// has no eXIf chunk.
func (p *Png) EXIF() []byte {
	c := p.ChunkByKind("eXIf")
	if c == nil {
		return nil
	}
	return c.data
}

// SetEXIF replaces this Png's EXIF payload. Passing nil removes the eXIf
// chunk without installing a new one. Unlike JPEG's APP1, eXIf carries the
// TIFF payload with no preamble, so SetEXIF never fails on size.
func (p *Png) SetEXIF(exif []byte) error {
	p.removeChunkKind("eXIf")
	if exif == nil {
		return nil
	}
	p.insertChunk(p.exifInsertPos(), NewChunk([4]byte{'e', 'X', 'I', 'f'}, exif))
	return nil
}

// exifInsertPos is where a freshly built eXIf chunk belongs: directly
// before IEND.
func (p *Png) exifInsertPos() int {
	for i, c := range p.chunks {
		if c.KindString() == "IEND" {
			return i
		}
	}
	return len(p.chunks)
}
