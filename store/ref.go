package store

import "fmt"

// PointRef addresses a single control point in a CurveStore.
//
// A reference either points into the curve under construction
// (see InProgress) or into one of the finished curves (see Finished).
// The zero value refers to the first point of the in-progress curve.
type PointRef struct {
	finished bool
	curve    int // index into finished curves; unused for in-progress refs
	point    int
}

// InProgress references point number i of the curve under construction.
func InProgress(i int) PointRef {
	return PointRef{point: i}
}

// Finished references point number i of finished curve number c.
func Finished(c, i int) PointRef {
	return PointRef{finished: true, curve: c, point: i}
}

// IsFinished reports whether r points into a finished curve.
func (r PointRef) IsFinished() bool {
	return r.finished
}

// Curve returns the index of the finished curve r refers to. The boolean
// result is false for references to the in-progress curve.
func (r PointRef) Curve() (int, bool) {
	if !r.finished {
		return -1, false
	}
	return r.curve, true
}

// Point returns the index of the control point within its curve.
func (r PointRef) Point() int {
	return r.point
}

// CurveKey identifies the curve r refers to. Two references share a curve
// exactly if their keys are equal. The in-progress curve has key -1.
func (r PointRef) CurveKey() int {
	if !r.finished {
		return -1
	}
	return r.curve
}

// SameCurve reports whether r and o refer to points of the same curve.
func (r PointRef) SameCurve(o PointRef) bool {
	return r.CurveKey() == o.CurveKey()
}

func (r PointRef) String() string {
	if r.finished {
		return fmt.Sprintf("finished[%d].%d", r.curve, r.point)
	}
	return fmt.Sprintf("current.%d", r.point)
}
