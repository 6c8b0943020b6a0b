package editor

import (
	"github.com/npillmayer/glyphstroke/curve"
)

// event is a pointer event on the main canvas.
type event int

const (
	press event = iota
	drag
	wheel
	release
)

var eventNames = []string{"press", "drag", "wheel", "release"}

func (ev event) String() string {
	return eventNames[ev]
}

// input carries the pointer position of an event in screen and image space,
// plus the wheel delta.
type input struct {
	screen curve.Point
	image  curve.Point
	delta  float64
}

// transition handles an event and reports whether the display needs to be
// re-rendered.
type transition func(*Editor, input) bool

// transitions is the table for draw mode, keyed by editing state.
// Events missing from the table are ignored.
var transitions = map[State]map[event]transition{
	Idle: {
		press:   pressIdle,
		release: releaseSelection,
	},
	PointSelected: {
		press:   pressSelected,
		drag:    dragPoint,
		wheel:   resizePoint,
		release: releaseSelection,
	},
	ConnectPending: {
		press: pressPending,
	},
}

// panTransitions is the table for pan mode, regardless of editing state.
var panTransitions = map[event]transition{
	press:   startPan,
	drag:    panCanvas,
	release: stopPan,
}

func (e *Editor) dispatch(ev event, in input) bool {
	var t transition
	var ok bool
	if e.mode == Pan {
		t, ok = panTransitions[ev]
	} else {
		t, ok = transitions[e.state][ev]
	}
	if !ok {
		tracer().Debugf("%s ignored in state %s", ev, e.state)
		return false
	}
	before := e.state
	changed := t(e, in)
	if e.state != before {
		tracer().Debugf("%s: %s -> %s", ev, before, e.state)
	}
	return changed
}

func (e *Editor) input(sx, sy float64) input {
	e.cursor, e.hasCursor = curve.Pt(sx, sy), true
	return input{screen: curve.Pt(sx, sy), image: e.vp.ToImage(sx, sy)}
}

// Press handles a button press at screen position (sx, sy).
//
// In draw mode, a press on a control point selects it, or, with connect mode
// on, picks it as an end of a connection. A press on empty canvas adds a
// point to the curve under construction, unless connect mode is on or the
// point operation is ResizePoints. In pan mode, a press starts moving the
// canvas.
//
// Press returns ErrNoImage if no reference image is loaded; the state is
// left untouched in that case.
func (e *Editor) Press(sx, sy float64) (bool, error) {
	if !e.hasImage {
		return false, ErrNoImage
	}
	return e.dispatch(press, e.input(sx, sy)), nil
}

// Drag handles pointer motion with the button held down.
func (e *Editor) Drag(sx, sy float64) bool {
	return e.dispatch(drag, e.input(sx, sy))
}

// Wheel handles a wheel turn while a point is selected. Only the sign of
// delta counts: the radius grows or shrinks by one image unit.
func (e *Editor) Wheel(delta float64) bool {
	if delta == 0 {
		return false
	}
	return e.dispatch(wheel, input{delta: delta})
}

// Release handles the button release. It ends a point selection or a pan
// drag in any mode.
func (e *Editor) Release() bool {
	changed := e.dispatch(release, input{})
	e.panning = false
	if e.state == PointSelected {
		e.state = Idle
	}
	return changed
}

// Hover records the pointer position without pressing. It reports true
// while a connection is pending, as the rubber band follows the pointer.
func (e *Editor) Hover(sx, sy float64) bool {
	e.input(sx, sy)
	return e.state == ConnectPending
}

// Cursor returns the last known pointer position in screen space.
func (e *Editor) Cursor() (curve.Point, bool) {
	return e.cursor, e.hasCursor
}

// --- Transitions -----------------------------------------------------------

func pressIdle(e *Editor, in input) bool {
	if selectAt(e, in) {
		return true
	}
	if e.connect || e.op != AddPoints {
		return false
	}
	return e.store.AddPoint(in.image.X, in.image.Y)
}

// pressSelected handles a press while a point is still selected. A hit
// selects the point under the pointer; empty canvas keeps the selection and
// never adds a point.
func pressSelected(e *Editor, in input) bool {
	return selectAt(e, in)
}

// selectAt selects the control point under the pointer, or picks it as the
// first end of a connection while connect mode is on.
func selectAt(e *Editor, in input) bool {
	ref, ok := e.store.HitTest(in.image.X, in.image.Y)
	if !ok {
		return false
	}
	e.ref = ref
	if e.connect {
		e.state = ConnectPending
	} else {
		e.state = PointSelected
	}
	return true
}

func pressPending(e *Editor, in input) bool {
	ref, ok := e.store.HitTest(in.image.X, in.image.Y)
	if !ok {
		return false
	}
	if !ref.SameCurve(e.ref) {
		e.store.Connect(e.ref, ref)
	} else {
		tracer().Infof("cannot connect a curve to itself")
	}
	e.state = Idle
	e.connect = false
	return true
}

func dragPoint(e *Editor, in input) bool {
	return e.store.MovePoint(e.ref, in.image.X, in.image.Y)
}

func resizePoint(e *Editor, in input) bool {
	delta := 1.0
	if in.delta < 0 {
		delta = -1
	}
	return e.store.ResizePoint(e.ref, delta)
}

func releaseSelection(e *Editor, in input) bool {
	e.state = Idle
	return false
}

func startPan(e *Editor, in input) bool {
	e.panning = true
	e.panX, e.panY = in.screen.X, in.screen.Y
	return false
}

func panCanvas(e *Editor, in input) bool {
	if !e.panning {
		return false
	}
	e.vp.PanBy(in.screen.X-e.panX, in.screen.Y-e.panY)
	e.panX, e.panY = in.screen.X, in.screen.Y
	return true
}

func stopPan(e *Editor, in input) bool {
	e.panning = false
	return false
}
