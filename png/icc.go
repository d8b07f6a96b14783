package png

import "imgparts/internal/deflate"

// iccProfileName is the chunk-internal name PNGs conventionally use inside
// iCCP; readers ignore it and only look at the zlib-compressed data that
// follows.
const iccProfileName = "ICC Profile"

// iccInsertPos is where a freshly built iCCP chunk is inserted: right
// after IHDR.
const iccInsertPos = 1

// ICCProfile decompresses and returns this Png's ICC profile, or nil if
// it has no iCCP chunk or the chunk's zlib stream is corrupt.
func (p *Png) ICCProfile() []byte {
	c := p.ChunkByKind("iCCP")
	if c == nil {
		return nil
	}

	nul := -1
	for i, b := range c.data {
		if b == 0 {
			nul = i
			break
		}
	}
	if nul < 0 || nul+1 >= len(c.data) {
		return nil
	}
	// c.data[nul+1] is the compression method byte; 0 (deflate) is the
	// only method PNG defines.
	if c.data[nul+1] != 0 {
		return nil
	}

	profile, err := deflate.Decompress(c.data[nul+2:])
	if err != nil {
		return nil
	}
	return profile
}

// SetICCProfile replaces this Png's ICC profile. Passing nil removes the
// iCCP chunk without installing a new one.
func (p *Png) SetICCProfile(profile []byte) error {
	p.removeChunkKind("iCCP")
	if profile == nil {
		return nil
	}

	data := make([]byte, 0, len(iccProfileName)+2+len(profile))
	data = append(data, iccProfileName...)
	data = append(data, 0, 0)
	data = append(data, deflate.Compress(profile)...)

	p.insertChunk(iccInsertPos, NewChunk([4]byte{'i', 'C', 'C', 'P'}, data))
	return nil
}

func (p *Png) removeChunkKind(kind string) {
	kept := p.chunks[:0]
	for _, c := range p.chunks {
		if c.KindString() != kind {
			kept = append(kept, c)
		}
	}
	p.chunks = kept
}

func (p *Png) insertChunk(pos int, c *Chunk) {
	if pos > len(p.chunks) {
		pos = len(p.chunks)
	}
	p.chunks = append(p.chunks[:pos:pos], append([]*Chunk{c}, p.chunks[pos:]...)...)
}
