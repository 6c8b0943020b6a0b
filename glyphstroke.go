/*
Package glyphstroke is the core of a glyph stroke editor.

A glyph is drawn as a set of variable-width strokes. Every stroke is a Bézier
curve of up to six control points, and every control point carries a radius.
The stroke is rendered as a ribbon of discs swept along the curve, with the
disc radius interpolated by the same Bézier weights as the coordinates.

Strokes are traced over a reference image, usually a scan or a rasterized
glyph of an existing font. The editor offers two views: the main canvas with
the reference image and the control points, and a preview of the stroked
glyph alone.

Sub-packages:

  - curve: control points, curves and Bézier evaluation
  - store: the curve store with all point edits
  - render: the disc sampler and rasterization of disc sets
  - view: pan and zoom of a view
  - editor: the pointer interaction state machine
  - surface: composition of main canvas and preview frames
  - config: editor settings

A Session ties these together for a client. It is not safe for concurrent
use; clients serialize events, as a GUI event loop does.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphstroke

import (
	"image"

	"github.com/npillmayer/glyphstroke/config"
	"github.com/npillmayer/glyphstroke/editor"
	"github.com/npillmayer/glyphstroke/internal/glyphref"
	"github.com/npillmayer/glyphstroke/internal/imgload"
	"github.com/npillmayer/glyphstroke/store"
	"github.com/npillmayer/glyphstroke/surface"
	"github.com/npillmayer/glyphstroke/view"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphstroke'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke")
}

// Session is an editing session: one curve store, edited on the main canvas
// and shown again in the preview.
type Session struct {
	settings config.Settings
	store    *store.CurveStore
	editor   *editor.Editor
	preview  *view.Viewport
	painter  *surface.Painter
	ref      *imgload.Reference
}

// NewSession creates an empty session. Settings should have been validated.
func NewSession(s config.Settings) *Session {
	cs := store.New(s.Limits())
	return &Session{
		settings: s,
		store:    cs,
		editor:   editor.New(cs, s.Viewport()),
		preview:  s.Viewport(),
		painter:  surface.NewPainter(s),
	}
}

// Settings returns the session's settings.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Store returns the session's curve store.
func (s *Session) Store() *store.CurveStore {
	return s.store
}

// Editor returns the interaction state machine of the main canvas.
func (s *Session) Editor() *editor.Editor {
	return s.editor
}

// Preview returns the viewport of the preview.
func (s *Session) Preview() *view.Viewport {
	return s.preview
}

// Reference returns the reference image, or nil.
func (s *Session) Reference() *imgload.Reference {
	return s.ref
}

// LoadImage loads a reference image from a file. On failure, the previous
// reference image stays in place.
func (s *Session) LoadImage(path string) error {
	ref, err := imgload.Load(path)
	if err != nil {
		return err
	}
	s.setReference(ref)
	return nil
}

// LoadGlyph rasterizes a glyph of a font file and uses it as the reference
// image.
func (s *Session) LoadGlyph(fontfile string, r rune, p glyphref.Params) error {
	img, err := glyphref.Load(fontfile, r, p)
	if err != nil {
		return err
	}
	s.setReference(&imgload.Reference{Path: fontfile, Format: "glyph", Image: img})
	return nil
}

// UnloadImage removes the reference image. Until another one is loaded,
// the editor refuses presses on the canvas.
func (s *Session) UnloadImage() {
	s.ref = nil
	s.editor.SetImageLoaded(false)
	tracer().Infof("reference image removed")
}

func (s *Session) setReference(ref *imgload.Reference) {
	s.ref = ref
	s.editor.SetImageLoaded(true)
	tracer().Infof("reference image %s (%s) of size %v", ref.Path, ref.Format, ref.Bounds().Size())
}

// Zoom zooms a viewport one step in or out, using the configured zoom step.
// It returns the new zoom factor.
func (s *Session) Zoom(vp *view.Viewport, in bool) float64 {
	if in {
		return vp.ZoomBy(s.settings.View.ZoomStep)
	}
	return vp.ZoomBy(2 - s.settings.View.ZoomStep)
}

// RenderMain paints the main canvas of size w×h.
func (s *Session) RenderMain(w, h int) *image.RGBA {
	var ref image.Image
	if s.ref != nil {
		ref = s.ref.Image
	}
	return s.painter.Canvas(image.Pt(w, h), ref, s.store.Snapshot(), s.editor.Viewport(), s.band())
}

// RenderPreview paints the preview of size w×h.
func (s *Session) RenderPreview(w, h int) *image.RGBA {
	return s.painter.Preview(image.Pt(w, h), s.store.Snapshot(), s.preview)
}

// band returns the rubber band of a pending connection, if any.
func (s *Session) band() *surface.Band {
	ref, ok := s.editor.Pending()
	if !ok {
		return nil
	}
	cursor, ok := s.editor.Cursor()
	if !ok {
		return nil
	}
	from, ok := s.store.Point(ref)
	if !ok {
		return nil
	}
	return &surface.Band{From: from, To: cursor}
}
