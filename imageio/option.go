package imageio

import "image/png"

// Option configures a Codec.
type Option func(c *Codec)

// WithJPEGQuality sets the JPEG encoder quality in [1, 100].
func WithJPEGQuality(quality int) Option {
	return func(c *Codec) {
		if quality > 0 && quality <= 100 {
			c.JPEGQuality = quality
		}
	}
}

// WithPNGCompression sets the PNG encoder compression level by name:
// "default", "none", "speed" or "best".
func WithPNGCompression(level string) Option {
	return func(c *Codec) {
		switch level {
		case "none":
			c.PNGCompression = png.NoCompression
		case "speed":
			c.PNGCompression = png.BestSpeed
		case "best":
			c.PNGCompression = png.BestCompression
		case "default":
			c.PNGCompression = png.DefaultCompression
		}
	}
}
