/*
Package store keeps the glyph strokes a user is editing.

A CurveStore owns a list of finished curves plus exactly one curve under
construction. Only the curve under construction grows when points are added;
points of finished curves may be moved and resized through a PointRef.
The store knows nothing about rendering, selection or interaction modes.

All operations are total: requests which cannot be honored (a seventh point,
a connection of a curve to itself, undo on an empty store, an out-of-range
reference) are ignored and reported by a false result, never by an error.

CurveStore is not safe for concurrent use. It is designed to be mutated
synchronously from within a single interaction handler.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package store

import (
	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphstroke.store'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.store")
}

// Limits for control points. The zero value is not usable; start from
// DefaultLimits.
type Limits struct {
	MinRadius     float64 // lower bound for a point's radius
	MaxRadius     float64 // upper bound for a point's radius
	DefaultRadius float64 // radius of newly added points
	MaxPoints     int     // cap of points per curve, at most curve.MaxPoints
}

// DefaultLimits returns radius bounds 1…20, default radius 5 and a cap of
// six points per curve.
func DefaultLimits() Limits {
	return Limits{
		MinRadius:     1,
		MaxRadius:     20,
		DefaultRadius: 5,
		MaxPoints:     curve.MaxPoints,
	}
}

// normalized repairs limits which are out of order or exceed the hard cap.
func (l Limits) normalized() Limits {
	if l.MaxPoints <= 0 || l.MaxPoints > curve.MaxPoints {
		l.MaxPoints = curve.MaxPoints
	}
	if l.MaxRadius < l.MinRadius {
		l.MinRadius, l.MaxRadius = l.MaxRadius, l.MinRadius
	}
	l.DefaultRadius = clamp(l.DefaultRadius, l.MinRadius, l.MaxRadius)
	return l
}

// CurveStore holds finished curves and the curve under construction.
type CurveStore struct {
	limits   Limits
	finished []curve.Curve
	current  curve.Curve
}

// New creates an empty store.
func New(limits Limits) *CurveStore {
	return &CurveStore{limits: limits.normalized()}
}

// Limits returns the point limits the store enforces.
func (s *CurveStore) Limits() Limits {
	return s.limits
}

// Snapshot is an immutable copy of a store's curves, suitable for rendering.
type Snapshot struct {
	Finished []curve.Curve
	Current  curve.Curve
}

// Renderable returns the curves of a snapshot which can be drawn, finished
// curves first, then the current curve if it has at least two points.
func (snap Snapshot) Renderable() []curve.Curve {
	curves := make([]curve.Curve, 0, len(snap.Finished)+1)
	for _, c := range snap.Finished {
		if c.Renderable() {
			curves = append(curves, c)
		}
	}
	if snap.Current.Renderable() {
		curves = append(curves, snap.Current)
	}
	return curves
}

// All returns the finished curves followed by the current curve, in hit-test
// order. The current curve is included even if empty.
func (snap Snapshot) All() []curve.Curve {
	return append(append(make([]curve.Curve, 0, len(snap.Finished)+1), snap.Finished...), snap.Current)
}

// Snapshot copies the store's state.
func (s *CurveStore) Snapshot() Snapshot {
	return Snapshot{
		Finished: s.Finished(),
		Current:  s.Current(),
	}
}

// Finished returns a copy of all finished curves, oldest first.
func (s *CurveStore) Finished() []curve.Curve {
	fin := make([]curve.Curve, len(s.finished))
	for i, c := range s.finished {
		fin[i] = c.Clone()
	}
	return fin
}

// Current returns a copy of the curve under construction.
func (s *CurveStore) Current() curve.Curve {
	return s.current.Clone()
}

// Len returns the total number of control points in the store.
func (s *CurveStore) Len() int {
	n := len(s.current)
	for _, c := range s.finished {
		n += len(c)
	}
	return n
}

// Empty reports whether the store holds no points at all.
func (s *CurveStore) Empty() bool {
	return len(s.current) == 0 && len(s.finished) == 0
}

// Point returns the control point r refers to.
func (s *CurveStore) Point(r PointRef) (curve.ControlPoint, bool) {
	if p := s.resolve(r); p != nil {
		return *p, true
	}
	return curve.ControlPoint{}, false
}

// resolve returns a pointer to the control point r refers to, or nil.
func (s *CurveStore) resolve(r PointRef) *curve.ControlPoint {
	var c curve.Curve
	if inx, ok := r.Curve(); ok {
		if inx < 0 || inx >= len(s.finished) {
			tracer().Debugf("reference %s: no such finished curve", r)
			return nil
		}
		c = s.finished[inx]
	} else {
		c = s.current
	}
	if r.point < 0 || r.point >= len(c) {
		tracer().Debugf("reference %s: no such point", r)
		return nil
	}
	return &c[r.point]
}

// --- Editing ---------------------------------------------------------------

// AddPoint appends (x, y) with the default radius to the curve under
// construction. Once the curve has reached the point cap, further points
// are silently ignored and AddPoint returns false.
func (s *CurveStore) AddPoint(x, y float64) bool {
	if len(s.current) >= s.limits.MaxPoints {
		tracer().Debugf("current curve is full, ignoring point (%g, %g)", x, y)
		return false
	}
	s.current = append(s.current, curve.CP(x, y, s.limits.DefaultRadius))
	return true
}

// HitTest finds the first control point whose disc contains (x, y).
// Finished curves are searched oldest first, the current curve last.
// Both (x, y) and the radii are in image space.
func (s *CurveStore) HitTest(x, y float64) (PointRef, bool) {
	for c, crv := range s.finished {
		for i, cp := range crv {
			if cp.Contains(x, y) {
				return Finished(c, i), true
			}
		}
	}
	for i, cp := range s.current {
		if cp.Contains(x, y) {
			return InProgress(i), true
		}
	}
	return PointRef{}, false
}

// MovePoint moves the referenced point to (x, y), keeping its radius.
func (s *CurveStore) MovePoint(r PointRef, x, y float64) bool {
	p := s.resolve(r)
	if p == nil {
		return false
	}
	p.X, p.Y = x, y
	return true
}

// ResizePoint adds delta to the radius of the referenced point. The result
// is clamped to the store's radius limits.
func (s *CurveStore) ResizePoint(r PointRef, delta float64) bool {
	p := s.resolve(r)
	if p == nil {
		return false
	}
	p.Radius = clamp(p.Radius+delta, s.limits.MinRadius, s.limits.MaxRadius)
	return true
}

// FinishCurrent moves the curve under construction to the finished curves,
// provided it is renderable, and starts a new, empty curve.
func (s *CurveStore) FinishCurrent() bool {
	if !s.current.Renderable() {
		return false
	}
	s.finished = append(s.finished, s.current.Clone())
	s.current = nil
	tracer().Debugf("finished curve #%d", len(s.finished)-1)
	return true
}

// Undo removes exactly one point. It pops the last point of the current
// curve. If the current curve is empty, the most recently finished curve is
// promoted back to being under construction, and its last point is popped.
// Undo on an empty store does nothing.
func (s *CurveStore) Undo() bool {
	if len(s.current) > 0 {
		s.current = s.current[:len(s.current)-1]
		return true
	}
	if len(s.finished) == 0 {
		return false
	}
	last := len(s.finished) - 1
	s.current, s.finished = s.finished[last], s.finished[:last]
	tracer().Debugf("promoted finished curve #%d back to current", last)
	return s.Undo()
}

// Clear removes all curves.
func (s *CurveStore) Clear() {
	s.finished = nil
	s.current = nil
}

// Connect joins two points of different curves by a new, finished
// connection curve (see curve.Connection). Requests to connect a curve with
// itself, or with references which do not resolve, are ignored.
func (s *CurveStore) Connect(a, b PointRef) bool {
	if a.SameCurve(b) {
		tracer().Debugf("will not connect curve %d to itself", a.CurveKey())
		return false
	}
	pa, pb := s.resolve(a), s.resolve(b)
	if pa == nil || pb == nil {
		return false
	}
	s.finished = append(s.finished, curve.Connection(*pa, *pb))
	return true
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
