package main

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/glyphstroke/editor"
	"github.com/npillmayer/glyphstroke/internal/glyphref"
	"github.com/pterm/pterm"
)

var errArgs = errors.New("wrong number of arguments")

func (op *Op) noArg() bool {
	return len(op.args) == 0
}

func (op *Op) want(n int) error {
	if len(op.args) != n {
		return fmt.Errorf("%w: %s takes %d", errArgs, opNames[op.code], n)
	}
	return nil
}

func (op *Op) float(i int) (float64, error) {
	f, err := strconv.ParseFloat(op.args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("argument not numeric: %v", op.args[i])
	}
	return f, nil
}

// xy reads two numeric arguments.
func (op *Op) xy() (float64, float64, error) {
	if err := op.want(2); err != nil {
		return 0, 0, err
	}
	x, err := op.float(0)
	if err != nil {
		return 0, 0, err
	}
	y, err := op.float(1)
	return x, y, err
}

// sign reads a '+' or '-' argument.
func (op *Op) sign() (bool, error) {
	if err := op.want(1); err != nil {
		return false, err
	}
	switch op.args[0] {
	case "+", "in":
		return true, nil
	case "-", "out":
		return false, nil
	}
	return false, fmt.Errorf("expected + or -, got %q", op.args[0])
}

func quitOp(intp *Intp, op *Op) (bool, bool, error) {
	return false, true, nil
}

// --- Reference images ------------------------------------------------------

func loadOp(intp *Intp, op *Op) (bool, bool, error) {
	if err := op.want(1); err != nil {
		return false, false, err
	}
	if err := intp.session.LoadImage(op.args[0]); err != nil {
		return false, false, err
	}
	ref := intp.session.Reference()
	pterm.Info.Printf("loaded %s image of size %v\n", ref.Format, ref.Bounds().Size())
	return true, false, nil
}

func unloadOp(intp *Intp, op *Op) (bool, bool, error) {
	if intp.session.Reference() == nil {
		pterm.Info.Println("no reference image loaded")
		return false, false, nil
	}
	intp.session.UnloadImage()
	return true, false, nil
}

// glyphOp rasterizes a glyph as the reference image. The glyph is given as a
// character or as a code point, e.g. "U+0041" or "0x41".
func glyphOp(intp *Intp, op *Op) (bool, bool, error) {
	if len(op.args) < 2 || len(op.args) > 3 {
		return false, false, fmt.Errorf("%w: glyph <font> <rune> [ppem]", errArgs)
	}
	r, err := parseRune(op.args[1])
	if err != nil {
		return false, false, err
	}
	p := glyphref.DefaultParams
	if len(op.args) == 3 {
		if p.PPEM, err = strconv.Atoi(op.args[2]); err != nil {
			return false, false, fmt.Errorf("ppem not numeric: %v", op.args[2])
		}
	}
	if err := intp.session.LoadGlyph(op.args[0], r, p); err != nil {
		return false, false, err
	}
	pterm.Info.Printf("reference glyph %s\n", glyphref.Describe(r))
	return true, false, nil
}

func parseRune(s string) (rune, error) {
	if n := utf8.RuneCountInString(s); n == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	for _, prefix := range []string{"U+", "u+", "0x"} {
		if len(s) > len(prefix) && s[:len(prefix)] == prefix {
			code, err := strconv.ParseUint(s[len(prefix):], 16, 32)
			if err != nil || code > utf8.MaxRune {
				break
			}
			return rune(code), nil
		}
	}
	return 0, fmt.Errorf("not a character or code point: %q", s)
}

// --- Pointer events --------------------------------------------------------

func pressOp(intp *Intp, op *Op) (bool, bool, error) {
	x, y, err := op.xy()
	if err != nil {
		return false, false, err
	}
	changed, err := intp.session.Editor().Press(x, y)
	return changed, false, err
}

func dragOp(intp *Intp, op *Op) (bool, bool, error) {
	x, y, err := op.xy()
	if err != nil {
		return false, false, err
	}
	return intp.session.Editor().Drag(x, y), false, nil
}

func hoverOp(intp *Intp, op *Op) (bool, bool, error) {
	x, y, err := op.xy()
	if err != nil {
		return false, false, err
	}
	return intp.session.Editor().Hover(x, y), false, nil
}

func releaseOp(intp *Intp, op *Op) (bool, bool, error) {
	return intp.session.Editor().Release(), false, nil
}

func wheelOp(intp *Intp, op *Op) (bool, bool, error) {
	up, err := op.sign()
	if err != nil {
		return false, false, err
	}
	delta := -1.0
	if up {
		delta = 1
	}
	return intp.session.Editor().Wheel(delta), false, nil
}

// --- Curve store -----------------------------------------------------------

func finishOp(intp *Intp, op *Op) (bool, bool, error) {
	if !intp.session.Editor().FinishCurrent() {
		pterm.Info.Println("nothing to finish: a curve needs at least 2 points")
		return false, false, nil
	}
	return true, false, nil
}

func undoOp(intp *Intp, op *Op) (bool, bool, error) {
	if !intp.session.Editor().Undo() {
		pterm.Info.Println("nothing to undo")
		return false, false, nil
	}
	return true, false, nil
}

func clearOp(intp *Intp, op *Op) (bool, bool, error) {
	return intp.session.Editor().Clear(), false, nil
}

// --- Modes -----------------------------------------------------------------

func connectOp(intp *Intp, op *Op) (bool, bool, error) {
	on := intp.session.Editor().ToggleConnect()
	pterm.Printf("connect mode %v\n", on)
	return true, false, nil
}

func modeOp(intp *Intp, op *Op) (bool, bool, error) {
	if err := op.want(1); err != nil {
		return false, false, err
	}
	switch op.args[0] {
	case "draw":
		intp.session.Editor().SetMode(editor.Draw)
	case "pan":
		intp.session.Editor().SetMode(editor.Pan)
	default:
		return false, false, fmt.Errorf("unknown mode %q, expected draw or pan", op.args[0])
	}
	return true, false, nil
}

func pointOp(intp *Intp, op *Op) (bool, bool, error) {
	pterm.Printf("point operation: %s\n", intp.session.Editor().TogglePointOp())
	return false, false, nil
}

// --- Views -----------------------------------------------------------------

func zoomOp(intp *Intp, op *Op) (bool, bool, error) {
	vp := intp.session.Editor().Viewport()
	if len(op.args) == 1 && op.args[0] == "reset" {
		vp.ResetZoom()
		vp.ResetOffset()
		return true, false, nil
	}
	in, err := op.sign()
	if err != nil {
		return false, false, err
	}
	pterm.Printf("zoom %.2f\n", intp.session.Zoom(vp, in))
	return true, false, nil
}

func panOp(intp *Intp, op *Op) (bool, bool, error) {
	dx, dy, err := op.xy()
	if err != nil {
		return false, false, err
	}
	intp.session.Editor().Viewport().PanBy(dx, dy)
	return true, false, nil
}

func pzoomOp(intp *Intp, op *Op) (bool, bool, error) {
	vp := intp.session.Preview()
	if len(op.args) == 1 && op.args[0] == "reset" {
		vp.ResetZoom()
		vp.ResetOffset()
		return true, false, nil
	}
	in, err := op.sign()
	if err != nil {
		return false, false, err
	}
	pterm.Printf("preview zoom %.2f\n", intp.session.Zoom(vp, in))
	return true, false, nil
}

func ppanOp(intp *Intp, op *Op) (bool, bool, error) {
	dx, dy, err := op.xy()
	if err != nil {
		return false, false, err
	}
	intp.session.Preview().PanBy(dx, dy)
	return true, false, nil
}

// --- Output ----------------------------------------------------------------

// evalOp evaluates a curve at parameter t: eval <index|current> <t>.
func evalOp(intp *Intp, op *Op) (bool, bool, error) {
	if err := op.want(2); err != nil {
		return false, false, err
	}
	c, err := intp.curve(op.args[0])
	if err != nil {
		return false, false, err
	}
	t, err := op.float(1)
	if err != nil {
		return false, false, err
	}
	if t < 0 || t > 1 {
		return false, false, fmt.Errorf("t must lie within [0, 1], is %g", t)
	}
	if !c.Renderable() {
		return false, false, errors.New("curve has fewer than 2 points")
	}
	p, r := c.At(t)
	pterm.Printf("B(%g) = %v, radius %.3f\n", t, p, r)
	return false, false, nil
}

func (intp *Intp) curve(arg string) (curve.Curve, error) {
	if arg == "current" {
		return intp.session.Store().Current(), nil
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("curve index not numeric: %v", arg)
	}
	fin := intp.session.Store().Finished()
	if i < 0 || i >= len(fin) {
		return nil, fmt.Errorf("curve index out of range: %d", i)
	}
	return fin[i], nil
}

func listOp(intp *Intp, op *Op) (bool, bool, error) {
	printCurves(intp.session.Store().Snapshot())
	return false, false, nil
}

// renderOp writes canvases: render [main] [preview]. Without arguments,
// both are written.
func renderOp(intp *Intp, op *Op) (bool, bool, error) {
	canvas, preview := op.noArg(), op.noArg()
	for _, arg := range op.args {
		switch arg {
		case "main":
			canvas = true
		case "preview":
			preview = true
		default:
			return false, false, fmt.Errorf("unknown canvas %q", arg)
		}
	}
	if err := intp.render(canvas, preview); err != nil {
		return false, false, err
	}
	if canvas {
		pterm.Printf("main canvas %v written\n", intp.canvas)
	}
	if preview {
		pterm.Printf("preview %v written\n", intp.preview)
	}
	return false, false, nil
}
