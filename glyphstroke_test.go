package glyphstroke

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/glyphstroke/config"
	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/glyphstroke/editor"
	"github.com/npillmayer/glyphstroke/internal/glyphref"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func writeReference(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "ref.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 50, 40))))
	return path
}

func TestSessionNeedsReference(t *testing.T) {
	s := NewSession(config.Default())
	_, err := s.Editor().Press(10, 10)
	assert.ErrorIs(t, err, editor.ErrNoImage)
	assert.Error(t, s.LoadImage("does/not/exist.png"))
	assert.Nil(t, s.Reference())
	_, err = s.Editor().Press(10, 10)
	assert.ErrorIs(t, err, editor.ErrNoImage, "failed load leaves the session without image")
}

func TestSessionEditAndRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstroke")
	defer teardown()
	//
	s := NewSession(config.Default())
	require.NoError(t, s.LoadImage(writeReference(t)))
	assert.Equal(t, image.Rect(0, 0, 50, 40), s.Reference().Bounds())
	e := s.Editor()
	for _, x := range []float64{10, 90} {
		_, err := e.Press(x, 50)
		require.NoError(t, err)
		e.Release()
	}
	assert.Equal(t, curve.Curve{curve.CP(10, 50, 5), curve.CP(90, 50, 5)}, s.Store().Current())
	prev := s.RenderPreview(100, 100)
	assert.Less(t, prev.RGBAAt(50, 50).R, uint8(5), "preview shows the curve under construction")
	main := s.RenderMain(100, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 100), main.Bounds())
}

func TestSessionRubberBand(t *testing.T) {
	s := NewSession(config.Default())
	require.NoError(t, s.LoadImage(writeReference(t)))
	e := s.Editor()
	for _, x := range []float64{10, 20} {
		_, _ = e.Press(x, 10)
		e.Release()
	}
	require.True(t, s.Store().FinishCurrent())
	assert.Nil(t, s.band())
	e.ToggleConnect()
	_, _ = e.Press(10, 10)
	e.Release()
	e.Hover(80, 80)
	band := s.band()
	require.NotNil(t, band)
	assert.Equal(t, curve.CP(10, 10, 5), band.From)
	assert.Equal(t, curve.Pt(80, 80), band.To)
}

func TestSessionZoom(t *testing.T) {
	s := NewSession(config.Default())
	assert.InDelta(t, 1.2, s.Zoom(s.Preview(), true), 1e-9)
	assert.InDelta(t, 0.96, s.Zoom(s.Preview(), false), 1e-9)
	assert.Equal(t, 1.0, s.Editor().Viewport().Zoom(), "views zoom independently")
}

func TestSessionLoadGlyph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	s := NewSession(config.Default())
	p := glyphref.Params{PPEM: 100, Width: 120, Height: 120}
	require.NoError(t, s.LoadGlyph(path, 'A', p))
	assert.Equal(t, "glyph", s.Reference().Format)
	assert.Equal(t, image.Rect(0, 0, 120, 120), s.Reference().Bounds())
	_, err := s.Editor().Press(10, 10)
	assert.NoError(t, err)
}

func TestSessionUnloadImage(t *testing.T) {
	s := NewSession(config.Default())
	require.NoError(t, s.LoadImage(writeReference(t)))
	s.UnloadImage()
	assert.Nil(t, s.Reference())
	_, err := s.Editor().Press(10, 10)
	assert.ErrorIs(t, err, editor.ErrNoImage)
	main := s.RenderMain(20, 20)
	assert.Equal(t, image.Rect(0, 0, 20, 20), main.Bounds(), "canvas renders without reference")
}
