/*
Package render turns glyph stroke curves into filled discs.

The renderer is a pure function of a curve, a target transform and a sampling
resolution. It samples the Bézier curve coarsely, then subdivides every coarse
segment linearly, with a density tied to the segment's length. Each sub-sample
yields one disc; the union of all discs approximates a ribbon of variable
width. Curvature error is bounded by the coarse step count, smoothness of
thickness transitions by the sub-step density.

The renderer never reads zoom or pan state. Clients supply a Transform per
target surface, which lets one set of curves drive several independently
transformed views.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"fmt"
	"math"

	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphstroke.render'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.render")
}

// DefaultSteps is the default number of coarse Bézier samples per curve.
const DefaultSteps = 20

// minSubSteps is the lower bound of linear sub-samples per coarse segment.
const minSubSteps = 3

// MaxSubSteps bounds the linear sub-samples between two coarse samples, so
// that far-off control points cannot make a curve render into an unbounded
// number of discs.
const MaxSubSteps = 1024

// MinDiscRadius is the smallest radius of an emitted disc, in target units.
const MinDiscRadius = 1.0

// Transform maps image space to a target surface: uniform scale, then offset.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// Identity leaves coordinates untouched.
var Identity = Transform{Scale: 1}

// Apply maps an image space point to target space.
func (tr Transform) Apply(p curve.Point) curve.Point {
	return curve.Point{
		X: p.X*tr.Scale + tr.OffsetX,
		Y: p.Y*tr.Scale + tr.OffsetY,
	}
}

// Invert maps a target space point back to image space.
// A transform with zero scale maps everything to the origin.
func (tr Transform) Invert(p curve.Point) curve.Point {
	if tr.Scale == 0 {
		return curve.Point{}
	}
	return curve.Point{
		X: (p.X - tr.OffsetX) / tr.Scale,
		Y: (p.Y - tr.OffsetY) / tr.Scale,
	}
}

// Length scales an image space length to target space.
func (tr Transform) Length(l float64) float64 {
	return l * tr.Scale
}

func (tr Transform) String() string {
	return fmt.Sprintf("scale=%g offset=(%g, %g)", tr.Scale, tr.OffsetX, tr.OffsetY)
}

// Disc is a filled circle in target space.
type Disc struct {
	X, Y, R float64
}

// Sample evaluates position and radius of c at parameter t, in image space.
func Sample(c curve.Curve, t float64) (curve.Point, float64) {
	return c.At(t)
}

// Render samples c into discs in the target space of tr.
//
// The curve is evaluated at steps+1 evenly spaced parameters. Every pair of
// consecutive samples is subdivided into max(3, round(d)) linear sub-samples,
// where d is their distance in image space, but into at most MaxSubSteps. Each sub-sample interpolates
// position and radius linearly and yields a disc with radius of at least
// MinDiscRadius. Curves with fewer than two points render to nil.
// A step count below 1 selects DefaultSteps.
func Render(c curve.Curve, tr Transform, steps int) []Disc {
	if !c.Renderable() {
		return nil
	}
	if steps < 1 {
		steps = DefaultSteps
	}
	pts, radii := c.Points(), c.Radii()
	samples := make([]curve.Point, steps+1)
	sradii := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		samples[i] = curve.EvaluatePoint(pts, t)
		sradii[i] = curve.EvaluateRadius(radii, t)
	}
	discs := make([]Disc, 0, 4*steps*minSubSteps)
	for i := 0; i < steps; i++ {
		p1, p2 := samples[i], samples[i+1]
		r1, r2 := sradii[i], sradii[i+1]
		n := int(min(MaxSubSteps, max(minSubSteps, math.Round(p1.Dist(p2)))))
		for j := 0; j < n; j++ {
			u := float64(j) / float64(n-1)
			p := tr.Apply(p1.Lerp(p2, u))
			r := tr.Length(r1 + (r2-r1)*u)
			discs = append(discs, Disc{X: p.X, Y: p.Y, R: max(MinDiscRadius, r)})
		}
	}
	tracer().Debugf("rendered curve of degree %d into %d discs", c.Degree(), len(discs))
	return discs
}

// RenderAll renders every renderable curve of curves with the same transform
// and concatenates the discs, in curve order.
func RenderAll(curves []curve.Curve, tr Transform, steps int) []Disc {
	var discs []Disc
	for _, c := range curves {
		discs = append(discs, Render(c, tr, steps)...)
	}
	return discs
}
