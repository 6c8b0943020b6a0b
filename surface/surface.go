/*
Package surface composes the pictures of the editor's two canvases.

The main canvas shows the reference image, the stroke ribbons, the control
points and, while a connection is pending, a rubber band towards the pointer.
The preview shows the ribbons alone, black on white, as the glyph would look.

Every frame is painted from scratch from a store.Snapshot. There is no
incremental patching of previously drawn items.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"
	"github.com/npillmayer/glyphstroke/config"
	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/glyphstroke/render"
	"github.com/npillmayer/glyphstroke/store"
	"github.com/npillmayer/glyphstroke/view"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/draw"
)

// tracer writes to trace with key 'glyphstroke.surface'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.surface")
}

// bandSteps is the number of discs of a connection rubber band.
const bandSteps = 20

// outlineWidth is the border width of control point markers, in pixels.
const outlineWidth = 1.0

// Palette holds the colors of both canvases.
type Palette struct {
	Point, Outline, Curve, Connect, Canvas color.Color
	Preview, Background                    color.Color
}

// PaletteFrom converts configured colors.
func PaletteFrom(c config.Colors) Palette {
	return Palette{
		Point:      c.Point.Color(),
		Outline:    c.Outline.Color(),
		Curve:      c.Curve.Color(),
		Connect:    c.Connect.Color(),
		Canvas:     c.Canvas.Color(),
		Preview:    c.Preview.Color(),
		Background: c.Background.Color(),
	}
}

// Band is a pending connection: it starts at a control point (image space)
// and follows the pointer (screen space).
type Band struct {
	From curve.ControlPoint
	To   curve.Point
}

// Painter paints canvases. It caches the scaled reference image between
// frames of equal zoom.
type Painter struct {
	pal    Palette
	steps  int
	scaled struct {
		src  image.Image
		zoom float64
		img  image.Image
	}
}

// NewPainter creates a painter for the given settings.
func NewPainter(s config.Settings) *Painter {
	return &Painter{pal: PaletteFrom(s.Colors), steps: s.Render.Steps}
}

// Canvas paints the main canvas of the given size. ref may be nil, band may
// be nil.
func (p *Painter) Canvas(size image.Point, ref image.Image, snap store.Snapshot, vp *view.Viewport, band *Band) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(p.pal.Canvas), image.Point{}, draw.Src)
	if ref != nil {
		p.paintReference(img, ref, vp)
	}
	tr := vp.Transform()
	for _, c := range snap.Renderable() {
		render.Fill(img, render.Render(c, tr, p.steps), p.pal.Curve)
	}
	var markers []render.Disc
	for _, c := range snap.All() {
		for _, cp := range c {
			pos := tr.Apply(cp.Pos())
			markers = append(markers, render.Disc{X: pos.X, Y: pos.Y, R: max(render.MinDiscRadius, tr.Length(cp.Radius))})
		}
	}
	for _, m := range markers {
		render.Fill(img, []render.Disc{m}, p.pal.Point)
	}
	render.Outline(img, markers, outlineWidth, p.pal.Outline)
	if band != nil {
		render.Fill(img, bandDiscs(band, tr), p.pal.Connect)
	}
	return img
}

// Preview paints the preview canvas: ribbons only, no control points.
func (p *Painter) Preview(size image.Point, snap store.Snapshot, vp *view.Viewport) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(p.pal.Background), image.Point{}, draw.Src)
	discs := render.RenderAll(snap.Renderable(), vp.Transform(), p.steps)
	render.Fill(img, discs, p.pal.Preview)
	return img
}

// paintReference draws the reference image scaled by the viewport's zoom at
// the viewport's offset.
func (p *Painter) paintReference(dst *image.RGBA, ref image.Image, vp *view.Viewport) {
	scaled := p.scale(ref, vp.Zoom())
	ox, oy := vp.Offset()
	at := image.Pt(int(ox), int(oy))
	r := scaled.Bounds().Sub(scaled.Bounds().Min).Add(at)
	draw.Draw(dst, r, scaled, scaled.Bounds().Min, draw.Over)
}

func (p *Painter) scale(ref image.Image, zoom float64) image.Image {
	if zoom == 1 {
		return ref
	}
	if p.scaled.src == ref && p.scaled.zoom == zoom {
		return p.scaled.img
	}
	b := ref.Bounds()
	w := max(1, int(float64(b.Dx())*zoom))
	h := max(1, int(float64(b.Dy())*zoom))
	tracer().Debugf("scaling reference image to %dx%d", w, h)
	p.scaled.src, p.scaled.zoom = ref, zoom
	p.scaled.img = transform.Resize(ref, w, h, transform.Lanczos)
	return p.scaled.img
}

// bandDiscs lays out discs from the band's control point to the pointer,
// shrinking to half the control point's radius.
func bandDiscs(band *Band, tr render.Transform) []render.Disc {
	from := tr.Apply(band.From.Pos())
	r := tr.Length(band.From.Radius)
	discs := make([]render.Disc, bandSteps)
	for i := range discs {
		t := float64(i) / float64(bandSteps-1)
		pos := from.Lerp(band.To, t)
		discs[i] = render.Disc{X: pos.X, Y: pos.Y, R: math.Max(render.MinDiscRadius, r*(1-t*0.5))}
	}
	return discs
}

// WritePNG encodes img as PNG to a file, creating missing directories.
func WritePNG(path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot write output file: %w", cerr)
		}
	}()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}
