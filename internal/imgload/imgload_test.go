package imgload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.Set(3, 2, color.RGBA{200, 10, 10, 255})
	return img
}

func TestDecodePNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstroke.image")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	ref, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "png", ref.Format)
	assert.Equal(t, image.Rect(0, 0, 8, 6), ref.Bounds())
	r, _, _, _ := ref.Image.At(3, 2).RGBA()
	assert.Equal(t, uint32(200*0x101), r)
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage()))
	ref, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "bmp", ref.Format)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("certainly not an image"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	// a PDF header is recognized, but is no reference image
	_, err = Decode([]byte("%PDF-1.4\n%garbage"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	// a truncated PNG is sniffed, but fails to decode
	_, err = Decode([]byte("\x89PNG\r\n\x1a\n\x00\x00"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())
	ref, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, ref.Path)
	//
	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
	var nilref *Reference
	assert.True(t, nilref.Bounds().Empty())
}
