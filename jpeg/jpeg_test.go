package jpeg

import (
	"bytes"
	"testing"
)

func TestReadMinimalRoundTrip(t *testing.T) {
	data := []byte{0xFF, SOI, 0xFF, EOI}

	j, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := len(j.Segments()); got != 2 {
		t.Fatalf("got %d segments, want 2", got)
	}

	out, err := j.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestReadDRISegmentRoundTrip(t *testing.T) {
	data := []byte{
		0xFF, SOI,
		0xFF, DRI, 0x00, 0x04, 0x00, 0x10,
		0xFF, EOI,
	}

	j, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	dri := j.SegmentByMarker(DRI)
	if dri == nil {
		t.Fatalf("no DRI segment found")
	}
	if !bytes.Equal(dri.Contents(), []byte{0x00, 0x10}) {
		t.Fatalf("unexpected DRI contents: %x", dri.Contents())
	}

	out, err := j.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestSOSEntropyTailKeepsStuffedAndRestartBytes(t *testing.T) {
	data := []byte{
		0xFF, SOI,
		0xFF, SOS, 0x00, 0x02,
		0x12, 0x34, 0xFF, 0x00, 0x56, 0xFF, RST0, 0x78,
		0xFF, EOI,
	}

	j, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	sos := j.SegmentByMarker(SOS)
	if sos == nil {
		t.Fatalf("no SOS segment found")
	}
	want := []byte{0x12, 0x34, 0xFF, 0x00, 0x56, 0xFF, RST0, 0x78}
	if !bytes.Equal(sos.Entropy(), want) {
		t.Fatalf("entropy tail mismatch: got %x, want %x", sos.Entropy(), want)
	}

	out, err := j.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestReadRejectsMissingSOI(t *testing.T) {
	if _, err := Read([]byte{0x00, 0x00}); err == nil {
		t.Fatalf("expected error for missing SOI")
	}
}

func TestSetAndGetEXIF(t *testing.T) {
	data := []byte{0xFF, SOI, 0xFF, EOI}
	j, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	payload := []byte{0x4D, 0x4D, 0x00, 0x2A}
	if err := j.SetEXIF(payload); err != nil {
		t.Fatalf("SetEXIF: %v", err)
	}
	if got := j.EXIF(); !bytes.Equal(got, payload) {
		t.Fatalf("EXIF mismatch: got %x, want %x", got, payload)
	}

	if err := j.SetEXIF(nil); err != nil {
		t.Fatalf("SetEXIF(nil): %v", err)
	}
	if got := j.EXIF(); got != nil {
		t.Fatalf("expected no EXIF after removal, got %x", got)
	}
}

func TestICCProfileSplitsAcrossTwoFragments(t *testing.T) {
	data := []byte{0xFF, SOI, 0xFF, EOI}
	j, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	profile := make([]byte, 70000)
	for i := range profile {
		profile[i] = byte(i)
	}

	if err := j.SetICCProfile(profile); err != nil {
		t.Fatalf("SetICCProfile: %v", err)
	}

	app2 := j.SegmentsByMarker(APP2)
	if len(app2) != 2 {
		t.Fatalf("got %d APP2 segments, want 2", len(app2))
	}

	got := j.ICCProfile()
	if !bytes.Equal(got, profile) {
		t.Fatalf("ICC profile mismatch after reassembly")
	}

	if err := j.SetICCProfile(nil); err != nil {
		t.Fatalf("SetICCProfile(nil): %v", err)
	}
	if got := j.ICCProfile(); got != nil {
		t.Fatalf("expected no ICC profile after removal")
	}
}

func TestICCProfileIgnoresInconsistentFragments(t *testing.T) {
	data := []byte{0xFF, SOI, 0xFF, EOI}
	j, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	contents := append([]byte(iccSignature), 1, 2, 0xAA)
	*j.SegmentsMut() = append(j.Segments()[:1:1], append([]*Segment{NewSegment(APP2, contents)}, j.Segments()[1:]...)...)

	if got := j.ICCProfile(); got != nil {
		t.Fatalf("expected nil for a profile missing fragment 2 of 2, got %x", got)
	}
}
