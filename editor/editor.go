/*
Package editor interprets pointer interactions on the main canvas.

The editor is a finite state machine on top of a store.CurveStore. Its states
are Idle, PointSelected (a control point is being dragged or resized) and
ConnectPending (one point of a connection is chosen, the second one is
awaited). Orthogonal to the state are the interaction mode (draw or pan),
the point operation (adding points or only resizing them) and the connect
toggle.

Clients feed screen coordinates of the main canvas. The editor maps them to
image space through the canvas' view.Viewport and calls into the store. Every
event reports whether the curves (or the viewport) changed, so that the
client can re-render both the canvas and the preview right away.

An Editor is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package editor

import (
	"errors"
	"fmt"

	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/glyphstroke/store"
	"github.com/npillmayer/glyphstroke/view"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphstroke.editor'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.editor")
}

// ErrNoImage is returned for canvas interactions while no reference image
// is loaded.
var ErrNoImage = errors.New("no reference image loaded")

// State is the editing state.
type State int

const (
	Idle State = iota
	PointSelected
	ConnectPending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PointSelected:
		return "point-selected"
	case ConnectPending:
		return "connect-pending"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Mode is the interaction mode of the main canvas.
type Mode int

const (
	Draw Mode = iota // pointer edits curves
	Pan              // pointer moves the canvas
)

func (m Mode) String() string {
	if m == Pan {
		return "pan"
	}
	return "draw"
}

// PointOp decides what a press on empty canvas does in draw mode.
type PointOp int

const (
	AddPoints    PointOp = iota // press on empty canvas adds a point
	ResizePoints                // press on empty canvas is ignored
)

func (op PointOp) String() string {
	if op == ResizePoints {
		return "resize"
	}
	return "add"
}

// Editor is the interaction state machine of the main canvas.
type Editor struct {
	store    *store.CurveStore
	vp       *view.Viewport
	state    State
	mode     Mode
	op       PointOp
	connect  bool
	ref      store.PointRef // selected point or first point of a connection
	panning  bool
	panX     float64 // last pointer position of a pan drag
	panY     float64
	hasImage bool
	// last pointer position, for the connection rubber band
	cursor    curve.Point
	hasCursor bool
}

// New creates an editor for the curves of s, shown in viewport vp.
// It starts idle, in draw mode, adding points.
func New(s *store.CurveStore, vp *view.Viewport) *Editor {
	return &Editor{store: s, vp: vp}
}

// Store returns the curve store the editor works on.
func (e *Editor) Store() *store.CurveStore {
	return e.store
}

// Viewport returns the viewport of the main canvas.
func (e *Editor) Viewport() *view.Viewport {
	return e.vp
}

// State returns the current editing state.
func (e *Editor) State() State {
	return e.state
}

// Mode returns the interaction mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// PointOp returns the point operation.
func (e *Editor) PointOp() PointOp {
	return e.op
}

// Connecting reports whether connect mode is toggled on.
func (e *Editor) Connecting() bool {
	return e.connect
}

// Selected returns the selected point while in state PointSelected.
func (e *Editor) Selected() (store.PointRef, bool) {
	return e.ref, e.state == PointSelected
}

// Pending returns the first point of a connection while in state
// ConnectPending.
func (e *Editor) Pending() (store.PointRef, bool) {
	return e.ref, e.state == ConnectPending
}

// SetImageLoaded tells the editor whether a reference image is present.
// Without one, presses on the canvas are refused.
func (e *Editor) SetImageLoaded(loaded bool) {
	e.hasImage = loaded
}

// --- Mode switches ---------------------------------------------------------

// SetMode switches between draw and pan mode. Leaving draw mode cancels
// connect mode.
func (e *Editor) SetMode(m Mode) {
	e.mode = m
	if m != Draw {
		e.cancelConnect()
	}
	tracer().Debugf("mode = %s", m)
}

// TogglePointOp switches between adding and resizing points.
func (e *Editor) TogglePointOp() PointOp {
	if e.op == AddPoints {
		e.op = ResizePoints
	} else {
		e.op = AddPoints
	}
	return e.op
}

// ToggleConnect switches connect mode. Turning it on selects draw mode;
// turning it off cancels a pending connection without emitting it.
func (e *Editor) ToggleConnect() bool {
	if e.connect {
		e.cancelConnect()
	} else {
		e.connect = true
		e.SetMode(Draw)
	}
	tracer().Debugf("connect mode = %v", e.connect)
	return e.connect
}

// --- Store edits -----------------------------------------------------------

// FinishCurrent finishes the curve under construction. See
// store.CurveStore.FinishCurrent.
func (e *Editor) FinishCurrent() bool {
	return e.edited(e.store.FinishCurrent())
}

// Undo removes the most recent point. See store.CurveStore.Undo.
func (e *Editor) Undo() bool {
	return e.edited(e.store.Undo())
}

// Clear removes all curves.
func (e *Editor) Clear() bool {
	changed := !e.store.Empty()
	e.store.Clear()
	return e.edited(changed)
}

// edited drops a selection or pending connection after the store changed
// underneath it, as point references may no longer be valid.
func (e *Editor) edited(changed bool) bool {
	if changed && e.state != Idle {
		tracer().Debugf("store changed, %s -> idle", e.state)
		e.state = Idle
		e.ref = store.PointRef{}
	}
	return changed
}

func (e *Editor) cancelConnect() {
	e.connect = false
	if e.state == ConnectPending {
		e.state = Idle
	}
}
