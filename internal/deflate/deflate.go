// Package deflate is the compress/decompress collaborator behind PNG's
// iCCP chunk. It exists so the rest of the module never imports a zlib
// implementation directly; swapping codecs means editing this one file.
package deflate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"imgparts/internal/containererr"
)

// Compress returns the zlib-wrapped deflate stream for data.
func Compress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	// A bytes.Buffer never returns a write error, so these can't fail.
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

// Decompress inflates a zlib stream produced by Compress (or any
// conformant zlib writer). It returns an error wrapping the underlying
// failure if the stream is malformed or truncated.
func Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("deflate: %w: opening zlib stream: %v", containererr.ErrInflate, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflate: %w: inflating zlib stream: %v", containererr.ErrInflate, err)
	}
	return out, nil
}
