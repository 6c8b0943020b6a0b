/*
Package imgload loads reference images to trace over.

The image format is sniffed from the file content, not from its name.
Supported are PNG, JPEG, GIF, BMP, TIFF and WebP.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package imgload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/h2non/filetype"
	"github.com/npillmayer/schuko/tracing"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// tracer writes to trace with key 'glyphstroke.image'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.image")
}

// ErrUnknownFormat is returned for data which is not a supported image.
var ErrUnknownFormat = errors.New("unsupported image format")

// supported maps file type extensions, as detected by sniffing, to decoder
// names of package image.
var supported = map[string]string{
	"png":  "png",
	"jpg":  "jpeg",
	"gif":  "gif",
	"bmp":  "bmp",
	"tif":  "tiff",
	"webp": "webp",
}

// Reference is a decoded reference image.
type Reference struct {
	Path   string      // file path, empty for images decoded from memory
	Format string      // decoder name, e.g. "png"
	Image  image.Image // decoded pixels
}

// Bounds returns the pixel bounds of the reference image.
func (ref *Reference) Bounds() image.Rectangle {
	if ref == nil || ref.Image == nil {
		return image.Rectangle{}
	}
	return ref.Image.Bounds()
}

// Load loads a reference image from a file.
func Load(path string) (*Reference, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load image: %w", err)
	}
	ref, err := Decode(bytez)
	if err != nil {
		return nil, fmt.Errorf("cannot load image %s: %w", path, err)
	}
	ref.Path = path
	return ref, nil
}

// Decode decodes a reference image from memory. The format is detected from
// the data, not from a file name.
func Decode(data []byte) (*Reference, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, ErrUnknownFormat
	}
	format, ok := supported[kind.Extension]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, kind.MIME.Value)
	}
	img, decoded, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", format, err)
	}
	if decoded != format {
		tracer().Debugf("sniffed %s, decoded as %s", format, decoded)
	}
	tracer().Infof("decoded %s image of size %v", decoded, img.Bounds().Size())
	return &Reference{Format: decoded, Image: img}, nil
}
