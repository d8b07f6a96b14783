package imgparts

import "imgparts/internal/containererr"

// Sentinel errors matching the taxonomy in the design: every parse or
// encode failure wraps one of these, so callers can match with errors.Is
// regardless of which container produced it. These are the same values
// the jpeg, png, riff, and webp packages wrap directly, so errors.Is
// works whether a caller imports imgparts or a format subpackage.
var (
	// ErrUnknownFormat means the leading bytes of the input match none of
	// the supported container magics.
	ErrUnknownFormat = containererr.ErrUnknownFormat

	// ErrMalformedJpeg means a JPEG marker stream was truncated or
	// contained an illegal marker sequence.
	ErrMalformedJpeg = containererr.ErrMalformedJpeg

	// ErrMalformedPng means a PNG chunk stream was truncated, missing its
	// signature, or missing a required chunk.
	ErrMalformedPng = containererr.ErrMalformedPng

	// ErrMalformedRiff means a RIFF chunk stream was truncated or a chunk
	// length overran its container.
	ErrMalformedRiff = containererr.ErrMalformedRiff

	// ErrInflate means zlib decompression of an iCCP payload failed.
	ErrInflate = containererr.ErrInflate

	// ErrTooLong means an encode-time field would not fit its on-disk
	// width (a JPEG segment over 65533 bytes, a PNG chunk over 2^31-1
	// bytes, or a RIFF payload over 2^32-1 bytes).
	ErrTooLong = containererr.ErrTooLong
)
