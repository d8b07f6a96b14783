package jpeg

import (
	"fmt"

	"imgparts/internal/containererr"
)

// exifSignature is the 6-byte preamble identifying an APP1 segment as
// carrying EXIF, as opposed to XMP or any other APP1 use.
const exifSignature = "Exif\x00\x00"

// exifInsertPos is where a freshly set EXIF segment is inserted: right
// after SOI.
const exifInsertPos = 1

// EXIF returns this Jpeg's EXIF payload with the "Exif\0\0" preamble
// stripped, or nil if it has none.
func (j *Jpeg) EXIF() []byte {
	for _, s := range j.SegmentsByMarker(APP1) {
		c := s.Contents()
		if len(c) >= len(exifSignature) && string(c[:len(exifSignature)]) == exifSignature {
			return c[len(exifSignature):]
		}
	}
	return nil
}

// SetEXIF replaces this Jpeg's EXIF payload. Passing nil removes it.
//
// SetEXIF fails with ErrTooLong if exif plus the "Exif\0\0" preamble
// would not fit a single segment's 65533-byte content cap; in that case
// the Jpeg is left unmodified.
func (j *Jpeg) SetEXIF(exif []byte) error {
	if exif != nil && len(exifSignature)+len(exif) > maxSegmentContentLen {
		return fmt.Errorf("jpeg: %w: exif payload of %d bytes does not fit one segment",
			containererr.ErrTooLong, len(exif))
	}

	j.removeEXIFSegments()
	if exif == nil {
		return nil
	}

	contents := make([]byte, 0, len(exifSignature)+len(exif))
	contents = append(contents, exifSignature...)
	contents = append(contents, exif...)
	fresh := NewSegment(APP1, contents)

	pos := exifInsertPos
	if pos > len(j.segments) {
		pos = len(j.segments)
	}
	j.segments = append(j.segments[:pos:pos], append([]*Segment{fresh}, j.segments[pos:]...)...)
	return nil
}

func (j *Jpeg) removeEXIFSegments() {
	kept := j.segments[:0]
	for _, s := range j.segments {
		if s.marker == APP1 {
			c := s.Contents()
			if len(c) >= len(exifSignature) && string(c[:len(exifSignature)]) == exifSignature {
				continue
			}
		}
		kept = append(kept, s)
	}
	j.segments = kept
}
