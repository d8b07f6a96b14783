package jpeg

import (
	"fmt"

	"imgparts/internal/containererr"
)

// iccSignature is the 12-byte marker identifying an APP2 segment as an
// ICC_PROFILE fragment, per the ICC specification's embedding convention.
const iccSignature = "ICC_PROFILE\x00"

// iccMaxFragment is the largest payload an ICC fragment can carry: a
// segment's 65533-byte content cap, less the 14-byte signature/seq/count
// header.
const iccMaxFragment = maxSegmentContentLen - 14

type iccFragment struct {
	seq, count byte
	data       []byte
}

func parseICCFragment(contents []byte) (iccFragment, bool) {
	if len(contents) < 14 || string(contents[:12]) != iccSignature {
		return iccFragment{}, false
	}
	return iccFragment{seq: contents[12], count: contents[13], data: contents[14:]}, true
}

// ICCProfile reassembles this Jpeg's ICC profile from its APP2 segments, or
// returns nil if it has none or the fragments are inconsistent.
//
// Fragments are expected to agree on a common count and to cover every
// sequence number from 1 to count exactly once; any violation of that is
// treated the same as having no profile at all, rather than as an error.
func (j *Jpeg) ICCProfile() []byte {
	var frags []iccFragment
	for _, s := range j.SegmentsByMarker(APP2) {
		f, ok := parseICCFragment(s.Contents())
		if !ok {
			continue
		}
		frags = append(frags, f)
	}
	if len(frags) == 0 {
		return nil
	}

	count := frags[0].count
	seen := make([]bool, int(count)+1)
	for _, f := range frags {
		if f.count != count || f.seq == 0 || int(f.seq) > int(count) || seen[f.seq] {
			return nil
		}
		seen[f.seq] = true
	}
	for i := 1; i <= int(count); i++ {
		if !seen[i] {
			return nil
		}
	}

	ordered := make([][]byte, int(count)+1)
	for _, f := range frags {
		ordered[f.seq] = f.data
	}
	var profile []byte
	for i := 1; i <= int(count); i++ {
		profile = append(profile, ordered[i]...)
	}
	return profile
}

// SetICCProfile replaces this Jpeg's ICC profile, splitting it across as
// many APP2 segments as needed. Passing nil removes any existing profile
// without installing a new one.
//
// SetICCProfile fails with ErrTooLong if profile needs more than 255
// fragments to store, since the fragment count is a single byte; the Jpeg
// is left unmodified in that case.
func (j *Jpeg) SetICCProfile(profile []byte) error {
	if profile != nil {
		need := (len(profile) + iccMaxFragment - 1) / iccMaxFragment
		if need == 0 {
			need = 1
		}
		if need > 255 {
			return fmt.Errorf("jpeg: %w: icc profile of %d bytes needs %d fragments, max 255",
				containererr.ErrTooLong, len(profile), need)
		}
	}

	j.removeICCSegments()
	if profile == nil {
		return nil
	}

	var chunks [][]byte
	for len(profile) > 0 {
		n := len(profile)
		if n > iccMaxFragment {
			n = iccMaxFragment
		}
		chunks = append(chunks, profile[:n])
		profile = profile[n:]
	}
	if len(chunks) == 0 {
		chunks = [][]byte{nil}
	}

	fresh := make([]*Segment, len(chunks))
	for i, chunk := range chunks {
		contents := make([]byte, 0, 14+len(chunk))
		contents = append(contents, iccSignature...)
		contents = append(contents, byte(i+1), byte(len(chunks)))
		contents = append(contents, chunk...)
		fresh[i] = NewSegment(APP2, contents)
	}

	pos := j.iccInsertPos()
	j.segments = append(j.segments[:pos:pos], append(fresh, j.segments[pos:]...)...)
	return nil
}

// iccInsertPos is where a freshly built run of ICC fragments belongs:
// right after the APP0 segment if this Jpeg has one, else right after
// SOI. Keeping APP0/JFIF ahead of APP2/ICC_PROFILE matches how real
// encoders order their segments.
func (j *Jpeg) iccInsertPos() int {
	for i, s := range j.segments {
		if s.marker == APP0 {
			return i + 1
		}
	}
	return 1
}

func (j *Jpeg) removeICCSegments() {
	kept := j.segments[:0]
	for _, s := range j.segments {
		if s.marker == APP2 {
			if _, ok := parseICCFragment(s.Contents()); ok {
				continue
			}
		}
		kept = append(kept, s)
	}
	j.segments = kept
}
