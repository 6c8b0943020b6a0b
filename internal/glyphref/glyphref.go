/*
Package glyphref renders a glyph of an existing font as a reference image.

Tracing a new glyph often starts from the outline of a glyph in another font.
Package glyphref rasterizes such a glyph, black on white and centered, into an
image which then serves as the background to trace over.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphref

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/npillmayer/glyphstroke/render"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'glyphstroke.image'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.image")
}

// ErrNoGlyph is returned if a font does not map a rune to a glyph.
var ErrNoGlyph = errors.New("font has no glyph for rune")

// Params configure glyph rasterization.
type Params struct {
	PPEM          int // render scale in pixels per em
	Width, Height int // image size in pixels
}

// DefaultParams renders at 400 pixels per em onto a 600×600 image.
var DefaultParams = Params{PPEM: 400, Width: 600, Height: 600}

// Describe returns a rune's code point and Unicode name, e.g.
// "U+0041 LATIN CAPITAL LETTER A".
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%04X %s", r, name)
}

// Load rasterizes the glyph for rune r of the font in file fontfile.
func Load(fontfile string, r rune, p Params) (*image.RGBA, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, fmt.Errorf("cannot load font: %w", err)
	}
	return Rasterize(bytez, r, p)
}

// Rasterize renders the glyph for rune r of an OpenType font (TTF or OTF)
// given as raw bytes. The glyph is centered by its bounding box.
func Rasterize(fontdata []byte, r rune, p Params) (*image.RGBA, error) {
	if p.PPEM <= 0 || p.Width <= 0 || p.Height <= 0 {
		return nil, errors.New("glyph raster parameters must be > 0")
	}
	sf, err := sfnt.Parse(fontdata)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %w", err)
	}
	var buf sfnt.Buffer
	gid, err := sf.GlyphIndex(&buf, r)
	if err != nil {
		return nil, err
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoGlyph, Describe(r))
	}
	segs, err := sf.LoadGlyph(&buf, gid, fixed.I(p.PPEM), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot load glyph %d: %w", gid, err)
	}
	if fontname, err := sf.Name(&buf, sfnt.NameIDFull); err == nil {
		tracer().Debugf("rasterizing %s from %s", Describe(r), fontname)
	}
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	shift := centering(segs.Bounds(), p)
	render.Paint(img, color.Black, func(rast *vector.Rasterizer, _, _ float32) {
		outline(rast, segs, shift)
	})
	return img, nil
}

// centering returns the shift which moves the center of a glyph's bounding
// box to the center of the image.
func centering(bbox fixed.Rectangle26_6, p Params) fixed.Point26_6 {
	mid := bbox.Min.Add(bbox.Max).Div(fixed.I(2))
	return fixed.Point26_6{
		X: fixed.Int26_6(p.Width*32) - mid.X,
		Y: fixed.Int26_6(p.Height*32) - mid.Y,
	}
}

// outline adds the contours of a glyph, shifted by shift, to rast.
func outline(rast *vector.Rasterizer, segs sfnt.Segments, shift fixed.Point26_6) {
	var xy [6]float32
	for _, seg := range segs {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for k := 0; k < n; k++ {
			q := seg.Args[k].Add(shift)
			xy[2*k], xy[2*k+1] = float32(q.X)/64, float32(q.Y)/64
		}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(xy[0], xy[1])
		case sfnt.SegmentOpLineTo:
			rast.LineTo(xy[0], xy[1])
		case sfnt.SegmentOpQuadTo:
			rast.QuadTo(xy[0], xy[1], xy[2], xy[3])
		case sfnt.SegmentOpCubeTo:
			rast.CubeTo(xy[0], xy[1], xy[2], xy[3], xy[4], xy[5])
		}
	}
}
