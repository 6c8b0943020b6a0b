/*
Package view keeps pan and zoom state of a drawing surface.

The editor works with two surfaces: the main canvas, where the reference
image and control points are shown, and the preview, which shows the glyph
shape alone. Each has its own Viewport. A Viewport turns into a
render.Transform, which is all the renderer ever sees of it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package view

import (
	"fmt"

	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/glyphstroke/render"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphstroke.view'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.view")
}

// Default zoom bounds.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 10.0
)

// Viewport maps image space to screen space: screen = image*zoom + offset.
type Viewport struct {
	zoom             float64
	offsetX, offsetY float64
	minZoom, maxZoom float64
}

// New creates a viewport at zoom 1 and offset 0, with zoom bounded to
// [minZoom, maxZoom]. Invalid bounds select the defaults.
func New(minZoom, maxZoom float64) *Viewport {
	if minZoom <= 0 || maxZoom < minZoom {
		minZoom, maxZoom = DefaultMinZoom, DefaultMaxZoom
	}
	return &Viewport{zoom: 1, minZoom: minZoom, maxZoom: maxZoom}
}

// Zoom returns the current zoom factor.
func (vp *Viewport) Zoom() float64 {
	return vp.zoom
}

// Offset returns the current pan offset in screen units.
func (vp *Viewport) Offset() (float64, float64) {
	return vp.offsetX, vp.offsetY
}

// ZoomBy multiplies the zoom factor by f and clamps it to the viewport's
// bounds. It returns the new zoom factor.
func (vp *Viewport) ZoomBy(f float64) float64 {
	return vp.SetZoom(vp.zoom * f)
}

// SetZoom sets the zoom factor, clamped to the viewport's bounds.
func (vp *Viewport) SetZoom(z float64) float64 {
	vp.zoom = max(vp.minZoom, min(z, vp.maxZoom))
	tracer().Debugf("zoom = %g", vp.zoom)
	return vp.zoom
}

// PanBy moves the offset by (dx, dy) screen units.
func (vp *Viewport) PanBy(dx, dy float64) {
	vp.offsetX += dx
	vp.offsetY += dy
}

// ResetZoom sets the zoom factor back to 1.
func (vp *Viewport) ResetZoom() {
	vp.zoom = 1
}

// ResetOffset sets the pan offset back to the origin.
func (vp *Viewport) ResetOffset() {
	vp.offsetX, vp.offsetY = 0, 0
}

// Transform returns the image-to-screen transform of the viewport.
func (vp *Viewport) Transform() render.Transform {
	return render.Transform{Scale: vp.zoom, OffsetX: vp.offsetX, OffsetY: vp.offsetY}
}

// ToImage maps a screen position to image space.
func (vp *Viewport) ToImage(sx, sy float64) curve.Point {
	return vp.Transform().Invert(curve.Pt(sx, sy))
}

// ToScreen maps an image position to screen space.
func (vp *Viewport) ToScreen(x, y float64) curve.Point {
	return vp.Transform().Apply(curve.Pt(x, y))
}

func (vp *Viewport) String() string {
	return fmt.Sprintf("zoom=%.3g offset=(%g, %g)", vp.zoom, vp.offsetX, vp.offsetY)
}
