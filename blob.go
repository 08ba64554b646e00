package filtergram

import (
	"bytes"
	"os"
	"sync"
)

// Blob abstraction for file path, bytes data and sniffed format
type Blob struct {
	path string
	buf  []byte
	once sync.Once
	err  error

	format string
}

func NewBlobFilePath(filepath string) *Blob {
	return &Blob{path: filepath}
}

func NewBlobBytes(bytes []byte) *Blob {
	return &Blob{buf: bytes}
}

var jpegHeader = []byte("\xFF\xD8\xFF")
var gifHeader = []byte("\x47\x49\x46")
var webpHeader = []byte("\x57\x45\x42\x50")
var pngHeader = []byte("\x89\x50\x4E\x47")
var bmpHeader = []byte("\x42\x4D")
var tifIIHeader = []byte("\x49\x49\x2A\x00")
var tifMMHeader = []byte("\x4D\x4D\x00\x2A")

func (b *Blob) readAllOnce() {
	b.once.Do(func() {
		if len(b.buf) == 0 {
			if b.path != "" {
				b.buf, b.err = os.ReadFile(b.path)
			}
			if len(b.buf) == 0 && b.err == nil {
				b.buf = nil
				b.err = ErrNotFound
				return
			}
		}
		if len(b.buf) > 12 {
			switch {
			case bytes.HasPrefix(b.buf, jpegHeader):
				b.format = "jpeg"
			case bytes.HasPrefix(b.buf, pngHeader):
				b.format = "png"
			case bytes.HasPrefix(b.buf, gifHeader):
				b.format = "gif"
			case bytes.Equal(b.buf[8:12], webpHeader):
				b.format = "webp"
			case bytes.HasPrefix(b.buf, bmpHeader):
				b.format = "bmp"
			case bytes.HasPrefix(b.buf, tifIIHeader), bytes.HasPrefix(b.buf, tifMMHeader):
				b.format = "tiff"
			}
		}
	})
}

func (b *Blob) IsEmpty() bool {
	b.readAllOnce()
	return b.path == "" && len(b.buf) == 0
}

// Format sniffed image format from magic bytes, empty if unrecognized
func (b *Blob) Format() string {
	b.readAllOnce()
	return b.format
}

func (b *Blob) ReadAll() ([]byte, error) {
	b.readAllOnce()
	return b.buf, b.err
}

func IsBlobEmpty(f *Blob) bool {
	return f == nil || f.IsEmpty()
}
