package riff

import (
	"bytes"
	"testing"
)

func TestReadDataChunkRoundTrip(t *testing.T) {
	data := []byte{'f', 'm', 't', ' ', 0x04, 0x00, 0x00, 0x00, 0xDE, 0xAD, 0xBE, 0xEF}

	c, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	d, ok := c.Content().(*Data)
	if !ok {
		t.Fatalf("expected *Data content, got %T", c.Content())
	}
	if !bytes.Equal(d.Bytes, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("unexpected data: %x", d.Bytes)
	}

	out, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestReadOddLengthDataPadByte(t *testing.T) {
	data := []byte{'f', 'm', 't', ' ', 0x03, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x00}

	c, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	out, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestReadRIFFWithSubchunks(t *testing.T) {
	data := []byte{
		'R', 'I', 'F', 'F', 0x10, 0x00, 0x00, 0x00,
		'W', 'E', 'B', 'P',
		'V', 'P', '8', ' ', 0x04, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04,
	}

	c, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.IDString() != "RIFF" {
		t.Fatalf("got id %q, want RIFF", c.IDString())
	}
	list, ok := c.Content().(*List)
	if !ok {
		t.Fatalf("expected *List content, got %T", c.Content())
	}
	if list.Kind == nil || string(list.Kind[:]) != "WEBP" {
		t.Fatalf("unexpected kind: %v", list.Kind)
	}
	if len(list.Subchunks) != 1 || list.Subchunks[0].IDString() != "VP8 " {
		t.Fatalf("unexpected subchunks: %+v", list.Subchunks)
	}

	out, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, data)
	}
}

func TestReadRejectsTruncatedHeader(t *testing.T) {
	if _, err := Read([]byte{'f', 'm', 't'}); err == nil {
		t.Fatalf("expected error for truncated header")
	}
}

func TestReadRejectsOverrunningLength(t *testing.T) {
	data := []byte{'f', 'm', 't', ' ', 0xFF, 0xFF, 0x00, 0x00, 0x01}
	if _, err := Read(data); err == nil {
		t.Fatalf("expected error for overrunning length")
	}
}
