package imgparts

import (
	"fmt"
	"io"

	"imgparts/internal/containererr"
	"imgparts/jpeg"
	"imgparts/png"
	"imgparts/webp"
)

// Format identifies which container a DynImage wraps.
type Format int

const (
	FormatJpeg Format = iota
	FormatPng
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatJpeg:
		return "jpeg"
	case FormatPng:
		return "png"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// DynImage is a format-erased wrapper over a jpeg.Jpeg, png.Png, or
// webp.WebP, picked by sniffing the input's leading bytes. It exposes the
// same ICC/EXIF access every concrete container does, without requiring
// the caller to branch on format up front.
type DynImage struct {
	format Format
	jpeg   *jpeg.Jpeg
	png    *png.Png
	webp   *webp.WebP
}

// sniff identifies data's container format from its leading bytes,
// without fully parsing it.
func sniff(data []byte) (Format, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return FormatJpeg, nil
	case len(data) >= 8 && [8]byte(data[:8]) == png.Signature:
		return FormatPng, nil
	case webp.IsWebP(data):
		return FormatWebP, nil
	default:
		return 0, fmt.Errorf("imgparts: %w", containererr.ErrUnknownFormat)
	}
}

// Read sniffs data's format and parses it as a DynImage.
func Read(data []byte) (*DynImage, error) {
	format, err := sniff(data)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJpeg:
		j, err := jpeg.Read(data)
		if err != nil {
			return nil, err
		}
		return &DynImage{format: format, jpeg: j}, nil
	case FormatPng:
		p, err := png.Read(data)
		if err != nil {
			return nil, err
		}
		return &DynImage{format: format, png: p}, nil
	case FormatWebP:
		w, err := webp.Read(data)
		if err != nil {
			return nil, err
		}
		return &DynImage{format: format, webp: w}, nil
	default:
		panic("unreachable")
	}
}

// Format reports which container this DynImage wraps.
func (d *DynImage) Format() Format { return d.format }

// Jpeg returns the wrapped *jpeg.Jpeg, or nil if this DynImage isn't a
// JPEG.
func (d *DynImage) Jpeg() *jpeg.Jpeg { return d.jpeg }

// Png returns the wrapped *png.Png, or nil if this DynImage isn't a PNG.
func (d *DynImage) Png() *png.Png { return d.png }

// WebP returns the wrapped *webp.WebP, or nil if this DynImage isn't a
// WebP.
func (d *DynImage) WebP() *webp.WebP { return d.webp }

func (d *DynImage) icc() ImageICC {
	switch d.format {
	case FormatJpeg:
		return d.jpeg
	case FormatPng:
		return d.png
	case FormatWebP:
		return d.webp
	default:
		panic("unreachable")
	}
}

func (d *DynImage) exif() ImageEXIF {
	switch d.format {
	case FormatJpeg:
		return d.jpeg
	case FormatPng:
		return d.png
	case FormatWebP:
		return d.webp
	default:
		panic("unreachable")
	}
}

// ICCProfile returns this image's ICC profile, or nil if it has none.
func (d *DynImage) ICCProfile() []byte { return d.icc().ICCProfile() }

// SetICCProfile replaces this image's ICC profile. Passing nil removes
// it.
func (d *DynImage) SetICCProfile(profile []byte) error { return d.icc().SetICCProfile(profile) }

// EXIF returns this image's EXIF payload, or nil if it has none.
func (d *DynImage) EXIF() []byte { return d.exif().EXIF() }

// SetEXIF replaces this image's EXIF payload. Passing nil removes it.
func (d *DynImage) SetEXIF(exif []byte) error { return d.exif().SetEXIF(exif) }

// Bytes encodes this image back into a single contiguous buffer.
func (d *DynImage) Bytes() ([]byte, error) {
	switch d.format {
	case FormatJpeg:
		return d.jpeg.Bytes()
	case FormatPng:
		return d.png.Bytes()
	case FormatWebP:
		return d.webp.Bytes()
	default:
		panic("unreachable")
	}
}

// WriteTo encodes this image and writes it to w.
func (d *DynImage) WriteTo(w io.Writer) (int64, error) {
	switch d.format {
	case FormatJpeg:
		return d.jpeg.WriteTo(w)
	case FormatPng:
		return d.png.WriteTo(w)
	case FormatWebP:
		return d.webp.WriteTo(w)
	default:
		panic("unreachable")
	}
}
