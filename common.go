// Package imgparts is a low-level reader/writer for the container
// structure of JPEG, PNG, and RIFF/WebP image files, plus uniform access to
// their embedded ICC color profile and EXIF metadata. It does not decode
// pixels; a buffer that parses here need not be one a pixel decoder would
// accept.
//
// Each format lives in its own subpackage (jpeg, png, webp); this package
// ties them together behind a format-sniffing façade, DynImage.
package imgparts

// ImageICC is implemented by every container that can carry an ICC color
// profile: jpeg.Jpeg, png.Png, and webp.WebP.
type ImageICC interface {
	// ICCProfile returns the reassembled ICC profile, or nil if the
	// container has none.
	ICCProfile() []byte

	// SetICCProfile replaces the container's ICC profile. Passing nil
	// removes it. SetICCProfile fails with ErrTooLong if the profile is
	// too large to split across the container's fragment-count limit.
	SetICCProfile(profile []byte) error
}

// ImageEXIF is implemented by every container that can carry an EXIF
// payload: jpeg.Jpeg, png.Png, and webp.WebP.
type ImageEXIF interface {
	// EXIF returns the raw TIFF-formatted EXIF payload, or nil if the
	// container has none. Any format-specific preamble ("Exif\0\0" in
	// JPEG) is stripped.
	EXIF() []byte

	// SetEXIF replaces the container's EXIF payload. Passing nil removes
	// it. jpeg.Jpeg fails with ErrTooLong if the payload does not fit a
	// single segment; png.Png and webp.WebP do not check the size here.
	SetEXIF(exif []byte) error
}
