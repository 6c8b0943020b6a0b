package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"
)

func TestRenderNotRenderable(t *testing.T) {
	assert.Nil(t, Render(nil, Identity, DefaultSteps))
	assert.Nil(t, Render(curve.Curve{curve.CP(1, 1, 5)}, Identity, DefaultSteps))
}

func TestRenderStraightLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstroke.render")
	defer teardown()
	//
	c := curve.Curve{curve.CP(0, 0, 5), curve.CP(10, 0, 5)}
	discs := Render(c, Identity, DefaultSteps)
	// segments have length 0.5, which rounds to 1 → 3 sub-steps each
	require.Len(t, discs, DefaultSteps*3)
	assert.Equal(t, Disc{X: 0, Y: 0, R: 5}, discs[0])
	last := discs[len(discs)-1]
	assert.InDelta(t, 10.0, last.X, 1e-12)
	assert.InDelta(t, 0.0, last.Y, 1e-12)
	for _, d := range discs {
		assert.InDelta(t, 5.0, d.R, 1e-12)
		assert.True(t, d.X >= 0 && d.X <= 10)
	}
	p, r := Sample(c, 0.5)
	assert.Equal(t, curve.Pt(5, 0), p)
	assert.Equal(t, 5.0, r)
}

func TestRenderSubStepsFollowSegmentLength(t *testing.T) {
	c := curve.Curve{curve.CP(0, 0, 2), curve.CP(200, 0, 2)}
	discs := Render(c, Identity, 4)
	// 4 coarse segments of length 50 each
	assert.Len(t, discs, 4*50)
	discs = Render(c, Identity, 0)
	assert.Len(t, discs, DefaultSteps*10, "step count 0 selects default")
}

func TestRenderSubStepsAreBounded(t *testing.T) {
	c := curve.Curve{curve.CP(0, 0, 5), curve.CP(1e9, 0, 5)}
	discs := Render(c, Identity, 4)
	require.Len(t, discs, 4*MaxSubSteps)
	assert.InDelta(t, 1e9, discs[len(discs)-1].X, 1e-3)
}

func TestRenderMinimumRadius(t *testing.T) {
	c := curve.Curve{curve.CP(0, 0, 1), curve.CP(40, 0, 1)}
	discs := Render(c, Transform{Scale: 0.25}, DefaultSteps)
	require.NotEmpty(t, discs)
	for _, d := range discs {
		assert.Equal(t, MinDiscRadius, d.R)
	}
}

func TestRenderTransform(t *testing.T) {
	c := curve.Curve{curve.CP(0, 0, 5), curve.CP(10, 10, 3), curve.CP(20, 0, 5)}
	plain := Render(c, Identity, DefaultSteps)
	tr := Transform{Scale: 2, OffsetX: 7, OffsetY: -3}
	moved := Render(c, tr, DefaultSteps)
	require.Equal(t, len(plain), len(moved), "sub-step density is taken in image space")
	for i := range plain {
		assert.InDelta(t, plain[i].X*2+7, moved[i].X, 1e-9)
		assert.InDelta(t, plain[i].Y*2-3, moved[i].Y, 1e-9)
		assert.InDelta(t, math.Max(1, plain[i].R*2), moved[i].R, 1e-9)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	c := curve.Curve{
		curve.CP(3, 4, 2), curve.CP(40, 90, 17), curve.CP(77, 12, 4),
		curve.CP(120, 64, 9), curve.CP(150, 5, 1), curve.CP(180, 80, 20),
	}
	tr := Transform{Scale: 1.7, OffsetX: 12, OffsetY: 8}
	assert.Equal(t, Render(c, tr, DefaultSteps), Render(c, tr, DefaultSteps))
}

func TestRenderAll(t *testing.T) {
	a := curve.Curve{curve.CP(0, 0, 5), curve.CP(10, 0, 5)}
	b := curve.Curve{curve.CP(0, 0, 5)}
	all := RenderAll([]curve.Curve{a, b, a}, Identity, DefaultSteps)
	assert.Len(t, all, 2*len(Render(a, Identity, DefaultSteps)))
}

func TestTransformInvert(t *testing.T) {
	tr := Transform{Scale: 2.5, OffsetX: 10, OffsetY: 20}
	p := curve.Pt(3, 4)
	q := tr.Invert(tr.Apply(p))
	assert.InDelta(t, p.X, q.X, 1e-12)
	assert.InDelta(t, p.Y, q.Y, 1e-12)
	assert.Equal(t, curve.Point{}, Transform{}.Invert(p))
}

func TestFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	Fill(img, []Disc{{X: 20, Y: 20, R: 8}}, color.RGBA{0, 0, 0, 255})
	assert.GreaterOrEqual(t, img.RGBAAt(20, 20).A, uint8(250), "disc center is painted")
	assert.Equal(t, uint8(0), img.RGBAAt(2, 2).A, "outside stays untouched")
}

func TestFillDoesNotAccumulateAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	half := color.RGBA{0, 0, 128, 128}
	Fill(img, []Disc{{X: 20, Y: 20, R: 8}, {X: 21, Y: 20, R: 8}}, half)
	assert.InDelta(t, 128, int(img.RGBAAt(20, 20).A), 1)
}

func TestOutline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	Outline(img, []Disc{{X: 20, Y: 20, R: 10}}, 2, color.RGBA{0, 0, 0, 255})
	assert.Equal(t, uint8(0), img.RGBAAt(20, 20).A, "ring has a hole")
	assert.GreaterOrEqual(t, img.RGBAAt(28, 20).A, uint8(250), "ring border is painted")
}

func TestPaint(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 30, 30))
	Paint(img, color.Black, func(rast *vector.Rasterizer, ox, oy float32) {
		rast.MoveTo(12-ox, 12-oy)
		rast.LineTo(20-ox, 12-oy)
		rast.LineTo(20-ox, 20-oy)
		rast.LineTo(12-ox, 20-oy)
		rast.ClosePath()
	})
	assert.Equal(t, uint8(255), img.RGBAAt(15, 15).A)
	assert.Equal(t, uint8(0), img.RGBAAt(25, 25).A)
	Paint(nil, color.Black, func(*vector.Rasterizer, float32, float32) {
		t.Error("nil image must not be painted")
	})
}
