package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier segment.
const kappa = 0.5522847498

// Fill paints the union of discs onto dst with color c.
//
// All discs go into a single rasterizer pass, so overlapping discs do not
// accumulate opacity: a translucent ribbon is drawn with uniform alpha.
func Fill(dst draw.Image, discs []Disc, c color.Color) {
	if len(discs) == 0 {
		return
	}
	Paint(dst, c, func(rast *vector.Rasterizer, ox, oy float32) {
		for _, d := range discs {
			circle(rast, float32(d.X)-ox, float32(d.Y)-oy, float32(d.R), false)
		}
	})
}

// Paint fills the paths that build adds to a rasterizer covering dst, and
// composites them onto dst with color c. Paths are in dst's coordinates
// minus (ox, oy), the minimum point of dst's bounds. Overlapping paths of
// equal winding form a union.
func Paint(dst draw.Image, c color.Color, build func(rast *vector.Rasterizer, ox, oy float32)) {
	if dst == nil {
		return
	}
	b := dst.Bounds()
	rast := vector.NewRasterizer(b.Dx(), b.Dy())
	rast.DrawOp = draw.Over
	build(rast, float32(b.Min.X), float32(b.Min.Y))
	rast.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Outline paints a ring of the given width along the border of every disc.
// Rings are rasterized one by one, as the union of overlapping rings would
// otherwise erase their inner borders.
func Outline(dst draw.Image, discs []Disc, width float64, c color.Color) {
	if dst == nil || len(discs) == 0 || width <= 0 {
		return
	}
	b := dst.Bounds()
	rast := vector.NewRasterizer(b.Dx(), b.Dy())
	src := image.NewUniform(c)
	ox, oy := float32(b.Min.X), float32(b.Min.Y)
	for _, d := range discs {
		rast.Reset(b.Dx(), b.Dy())
		rast.DrawOp = draw.Over
		x, y := float32(d.X)-ox, float32(d.Y)-oy
		circle(rast, x, y, float32(d.R), false)
		if inner := d.R - width; inner > 0 {
			// opposite winding cuts out the inner disc
			circle(rast, x, y, float32(inner), true)
		}
		rast.Draw(dst, b, src, image.Point{})
	}
}

// circle adds a closed circular path of four cubic arcs to rast.
func circle(rast *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	rast.MoveTo(cx+r, cy)
	if !reverse {
		rast.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		rast.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		rast.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		rast.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		rast.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		rast.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		rast.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		rast.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	rast.ClosePath()
}
