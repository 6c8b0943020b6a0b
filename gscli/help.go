package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (bool, bool, error) {
	topic := ""
	if !op.noArg() {
		topic = op.args[0]
	}
	help(topic)
	return false, false, nil
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "pointer", "press", "drag", "release", "wheel", "hover":
		pterm.Info.Println("Pointer events on the main canvas")
		pterm.Println(`
	Coordinates are screen coordinates of the main canvas.

	press x y     press the button: select a point, or add one on empty canvas
	drag x y      move the pointer with the button down: drag the selected point
	release       release the button
	wheel +|-     grow or shrink the selected point's radius by 1
	hover x y     move the pointer without button, e.g. while connecting
	`)
	case "curves", "finish", "undo", "clear", "connect":
		pterm.Info.Println("Curves")
		pterm.Println(`
	A curve is built from 2 to 6 control points, each with a radius.

	finish        finish the curve under construction (needs 2 points)
	undo          remove the most recent point or curve
	clear         remove all curves
	connect       toggle connect mode: click two points of different curves
	              to join them by a new curve
	list          show all curves
	eval c t      evaluate curve c (index or "current") at t in [0, 1]
	`)
	case "view", "views", "zoom", "pan", "mode":
		pterm.Info.Println("Views")
		pterm.Println(`
	mode draw|pan     pointer edits curves, or moves the main canvas
	op                toggle between adding and only resizing points
	zoom +|-|reset    zoom the main canvas
	pan dx dy         move the main canvas
	pzoom +|-|reset   zoom the preview
	ppan dx dy        move the preview
	render [main] [preview]   write canvases as PNG files
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load <image>                   load a reference image
	unload                         remove the reference image
	glyph <font> <rune> [ppem]     use a glyph of a font as reference image
	press, drag, release, wheel, hover
	finish, undo, clear, connect, list, eval
	mode, op, zoom, pan, pzoom, ppan, render
	quit

	Try "help pointer", "help curves" or "help view".
	`)
	}
}
