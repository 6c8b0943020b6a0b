/*
Package curve holds the geometric model of a glyph stroke.

A stroke is a single Bézier curve of degree 1 to 5, given by up to six
weighted control points. Every control point carries a radius, and the radius
is interpolated along the curve with the very same Bernstein polynomials as the
coordinates. The stroke width therefore is a Bézier-interpolated quantity over
the curve parameter t, not a separate width function.

Coordinates are in image space, i.e. the pixel space of the reference image
the user traces over. Mapping to screen space is left to clients.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package curve

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphstroke.curve'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.curve")
}

// MaxPoints is the hard cap for control points per curve. Six points make a
// Bézier curve of degree 5.
const MaxPoints = 6

// MinRenderable is the number of control points a curve needs to be drawable.
const MinRenderable = 2

// Point is a location in image space.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp linearly interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{
		X: (p.X + q.X) / 2,
		Y: (p.Y + q.Y) / 2,
	}
}

// ControlPoint is a weighted control point: a location plus the stroke radius
// at that location.
type ControlPoint struct {
	X, Y   float64
	Radius float64
}

// CP returns the control point (x, y, r).
func CP(x, y, r float64) ControlPoint {
	return ControlPoint{X: x, Y: y, Radius: r}
}

// Pos returns the location of a control point.
func (cp ControlPoint) Pos() Point {
	return Point{X: cp.X, Y: cp.Y}
}

// Contains reports whether (x, y) lies within the disc of the control point.
// The boundary counts as inside.
func (cp ControlPoint) Contains(x, y float64) bool {
	return math.Hypot(x-cp.X, y-cp.Y) <= cp.Radius
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("(%g, %g, r=%g)", cp.X, cp.Y, cp.Radius)
}

// Curve is an ordered sequence of control points.
// A curve with fewer than two points is not yet renderable.
type Curve []ControlPoint

// Degree returns the degree of the Bézier curve, or -1 for an empty curve.
func (c Curve) Degree() int {
	return len(c) - 1
}

// Renderable reports whether c has enough points to be drawn.
func (c Curve) Renderable() bool {
	return len(c) >= MinRenderable
}

// Full reports whether c has reached the control point cap.
func (c Curve) Full() bool {
	return len(c) >= MaxPoints
}

// Points returns the locations of the control points.
func (c Curve) Points() []Point {
	pts := make([]Point, len(c))
	for i, cp := range c {
		pts[i] = cp.Pos()
	}
	return pts
}

// Radii returns the radii of the control points.
func (c Curve) Radii() []float64 {
	radii := make([]float64, len(c))
	for i, cp := range c {
		radii[i] = cp.Radius
	}
	return radii
}

// Clone returns a copy of c which does not share storage with c.
func (c Curve) Clone() Curve {
	if c == nil {
		return nil
	}
	return append(Curve(nil), c...)
}

// At evaluates position and radius of c at parameter t ∈ [0,1].
// For curves which are not renderable, At returns the zero values.
func (c Curve) At(t float64) (Point, float64) {
	if !c.Renderable() {
		return Point{}, 0
	}
	return EvaluatePoint(c.Points(), t), EvaluateRadius(c.Radii(), t)
}

func (c Curve) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, cp := range c {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(cp.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Connection builds the curve which joins two control points of different
// curves. It is a quadratic curve with its middle control point halfway
// between a and b, carrying the arithmetic mean of both radii.
func Connection(a, b ControlPoint) Curve {
	mid := a.Pos().Midpoint(b.Pos())
	c := Curve{
		a,
		CP(mid.X, mid.Y, (a.Radius+b.Radius)/2),
		b,
	}
	tracer().Debugf("connection curve %v", c)
	return c
}
