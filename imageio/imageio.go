// Package imageio decodes raster images into the engine's pixel buffer and
// encodes results back by target extension. Decoding accepts JPEG, PNG, GIF,
// BMP, TIFF and WebP; encoding supports every format the imaging library can
// write (WebP output is not available).
package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	// register decoders beyond the stdlib defaults
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/filtergram/filtergram/pixel"
)

// ErrUnsupportedFormat reports an image format the codec cannot handle.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// ErrDecode reports an undecodable input.
var ErrDecode = errors.New("imageio: decode failure")

// Codec decodes and encodes images with configurable encoder settings.
type Codec struct {
	JPEGQuality    int
	PNGCompression png.CompressionLevel
}

// NewCodec creates a Codec with default encoder settings.
func NewCodec(options ...Option) *Codec {
	c := &Codec{
		JPEGQuality:    95,
		PNGCompression: png.DefaultCompression,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Decode parses buf into a normalized pixel buffer, returning the detected
// format name alongside.
func (c *Codec) Decode(buf []byte) (*pixel.Image, string, error) {
	src, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, "", errors.Join(ErrDecode, err)
	}
	return pixel.FromNRGBA(imaging.Clone(src)), format, nil
}

// Encode serializes img into the format implied by ext (with or without the
// leading dot). The whole result is produced in memory so a failed encode
// never leaves a partial output behind.
func (c *Codec) Encode(img *pixel.Image, ext string) ([]byte, error) {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, ErrUnsupportedFormat
	}
	var buf bytes.Buffer
	err = imaging.Encode(&buf, img.ToNRGBA(), format,
		imaging.JPEGQuality(c.JPEGQuality),
		imaging.PNGCompressionLevel(c.PNGCompression),
	)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
