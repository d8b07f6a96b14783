// Package containererr holds the sentinel errors shared across the
// jpeg, png, riff, and webp packages and re-exported by the root imgparts
// package, so errors.Is works the same way regardless of which layer a
// caller imports.
package containererr

import "errors"

var (
	// ErrUnknownFormat means the leading bytes of an input match none of
	// the supported container magics.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrMalformedJpeg means a JPEG marker stream was truncated or
	// contained an illegal marker sequence.
	ErrMalformedJpeg = errors.New("malformed jpeg")

	// ErrMalformedPng means a PNG chunk stream was truncated, missing its
	// signature, or missing a required chunk.
	ErrMalformedPng = errors.New("malformed png")

	// ErrMalformedRiff means a RIFF chunk stream was truncated or a chunk
	// length overran its container.
	ErrMalformedRiff = errors.New("malformed riff")

	// ErrInflate means zlib decompression of an iCCP payload failed.
	ErrInflate = errors.New("inflate failed")

	// ErrTooLong means an encode-time field would not fit its on-disk
	// width (a JPEG segment over 65533 bytes, a PNG chunk over 2^31-1
	// bytes, or a RIFF payload over 2^32-1 bytes).
	ErrTooLong = errors.New("field too long to encode")
)
