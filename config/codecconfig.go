package config

import (
	"flag"

	"github.com/filtergram/filtergram"
	"github.com/filtergram/filtergram/imageio"
)

// withCodec with image encode based config option
func withCodec(fs *flag.FlagSet, cb Callback) filtergram.Option {
	var (
		jpegQuality = fs.Int("jpeg-quality", 95,
			"JPEG encode quality, 1 to 100")
		pngCompression = fs.String("png-compression", "default",
			"PNG compression level: default, none, speed or best")

		_, _ = cb()
	)
	return func(o *filtergram.Filtergram) {
		o.Codec = imageio.NewCodec(
			imageio.WithJPEGQuality(*jpegQuality),
			imageio.WithPNGCompression(*pngCompression),
		)
	}
}
