package imgparts

import (
	"bytes"
	"testing"
)

func TestReadSniffsJPEG(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xD9}
	img, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if img.Format() != FormatJpeg {
		t.Fatalf("got format %v, want jpeg", img.Format())
	}
	if img.Jpeg() == nil {
		t.Fatalf("expected non-nil Jpeg()")
	}

	out, err := img.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestReadRejectsUnknownFormat(t *testing.T) {
	if _, err := Read([]byte("not an image")); err == nil {
		t.Fatalf("expected error for unrecognized format")
	}
}

func TestDynImageSetICCProfileAndEXIF(t *testing.T) {
	img, err := Read([]byte{0xFF, 0xD8, 0xFF, 0xD9})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if err := img.SetICCProfile([]byte{0x01, 0x02}); err != nil {
		t.Fatalf("SetICCProfile: %v", err)
	}
	if got := img.ICCProfile(); !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Fatalf("ICCProfile mismatch: got %x", got)
	}

	if err := img.SetEXIF([]byte{0x4D, 0x4D}); err != nil {
		t.Fatalf("SetEXIF: %v", err)
	}
	if got := img.EXIF(); !bytes.Equal(got, []byte{0x4D, 0x4D}) {
		t.Fatalf("EXIF mismatch: got %x", got)
	}
}
