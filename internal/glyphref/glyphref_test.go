package glyphref

import (
	"image"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, "U+0041 LATIN CAPITAL LETTER A", Describe('A'))
	assert.Equal(t, "U+0378", Describe(0x0378), "unassigned code point has no name")
}

func TestRasterize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstroke.image")
	defer teardown()
	//
	p := Params{PPEM: 200, Width: 240, Height: 240}
	img, err := Rasterize(goregular.TTF, 'I', p)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 240, 240), img.Bounds())
	// the stem of 'I' runs through the center
	assert.Less(t, img.RGBAAt(120, 120).R, uint8(10))
	assert.Equal(t, uint8(255), img.RGBAAt(2, 2).R, "corners stay white")
}

func TestRasterizeErrors(t *testing.T) {
	_, err := Rasterize(goregular.TTF, 'A', Params{})
	assert.Error(t, err)
	_, err = Rasterize([]byte("no font"), 'A', DefaultParams)
	assert.Error(t, err)
	_, err = Rasterize(goregular.TTF, '一', DefaultParams)
	assert.ErrorIs(t, err, ErrNoGlyph)
	_, err = Load("does/not/exist.ttf", 'A', DefaultParams)
	assert.Error(t, err)
}

func TestCentering(t *testing.T) {
	bbox := fixed.R(0, -20, 10, 0) // 10 wide, 20 high, above the baseline
	shift := centering(bbox, Params{PPEM: 1, Width: 100, Height: 60})
	assert.Equal(t, fixed.P(45, 40), shift)
	assert.Equal(t, fixed.P(50, 30), bbox.Min.Add(bbox.Max).Div(fixed.I(2)).Add(shift))
}
