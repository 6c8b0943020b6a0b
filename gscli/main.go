/*
Command gscli is an interactive shell for the glyph stroke editor.

It stands in for the editor's GUI: pointer events on the main canvas are typed
as commands with screen coordinates, and both canvases are written to PNG
files after every change.

	gscli -image scan.png -out frames
	gs > press 120 80
	gs > release
	gs > press 220 90; release
	gs > list

Several commands may be given on one line, separated by ';'.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphstroke"
	"github.com/npillmayer/glyphstroke/config"
	"github.com/npillmayer/glyphstroke/surface"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glyphstroke.cli'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.cli")
}

// traceKeys are the trace keys of all packages of the editor.
var traceKeys = []string{
	"glyphstroke",
	"glyphstroke.cli",
	"glyphstroke.config",
	"glyphstroke.curve",
	"glyphstroke.editor",
	"glyphstroke.image",
	"glyphstroke.render",
	"glyphstroke.store",
	"glyphstroke.surface",
	"glyphstroke.view",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Info"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	confname := flag.String("config", "", "Settings file (TOML)")
	imgname := flag.String("image", "", "Reference image to load")
	outdir := flag.String("out", "", "Directory to write canvas images to after every change")
	size := flag.String("size", "800x600", "Size of the main canvas")
	psize := flag.String("psize", "300x300", "Size of the preview")
	flag.Parse()
	level, err := traceLevel(*tlevel)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(5)
	}
	setTraceLevel(level)
	pterm.Info.Println("Welcome to the glyph stroke editor")
	//
	settings := config.Default()
	if *confname != "" {
		if settings, err = config.Load(*confname); err != nil {
			pterm.Error.Println(err)
			os.Exit(2)
		}
	}
	intp := &Intp{session: glyphstroke.NewSession(settings), outdir: *outdir}
	if intp.canvas, err = parseSize(*size); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if intp.preview, err = parseSize(*psize); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if *imgname != "" {
		if err := intp.session.LoadImage(*imgname); err != nil {
			pterm.Error.Println(err)
			os.Exit(4)
		}
	}
	//
	// set up REPL
	intp.repl, err = readline.New("gs > ")
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch name {
	case "Debug":
		return tracing.LevelDebug, nil
	case "Info":
		return tracing.LevelInfo, nil
	case "Error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level: %s", name)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// Size is the pixel size of a canvas.
type Size struct {
	W, H int
}

func (sz Size) String() string {
	return fmt.Sprintf("%dx%d", sz.W, sz.H)
}

func parseSize(s string) (Size, error) {
	var sz Size
	if _, err := fmt.Sscanf(s, "%dx%d", &sz.W, &sz.H); err != nil || sz.W <= 0 || sz.H <= 0 {
		return sz, fmt.Errorf("invalid canvas size %q, expected WxH", s)
	}
	return sz, nil
}

// Intp is our interpreter object
type Intp struct {
	session *glyphstroke.Session
	repl    *readline.Instance
	outdir  string // if set, canvases are written after every change
	canvas  Size
	preview Size
}

func (intp *Intp) String() string {
	if intp == nil || intp.session == nil {
		return "()"
	}
	e := intp.session.Editor()
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( %s, %s, op=%s", e.Mode(), e.State(), e.PointOp()))
	if e.Connecting() {
		sb.WriteString(", connect")
	}
	sb.WriteString(fmt.Sprintf(", %d curves", len(intp.session.Store().Finished())))
	if cur := intp.session.Store().Current(); len(cur) > 0 {
		sb.WriteString(fmt.Sprintf(" + %d points", len(cur)))
	}
	sb.WriteString(" )")
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if intp.execute(cmd) {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single command with its arguments.
type Op struct {
	code int
	args []string
}

// Command is a line of input.
type Command struct {
	ops []Op
}

const (
	QUIT int = iota
	HELP
	LOAD
	UNLOAD
	GLYPH
	PRESS
	DRAG
	HOVER
	RELEASE
	WHEEL
	FINISH
	UNDO
	CLEAR
	CONNECT
	MODE
	POINTOP
	ZOOM
	PAN
	PZOOM
	PPAN
	EVAL
	LIST
	RENDER
)

var opNames = []string{
	"quit",
	"help",
	"load",
	"unload",
	"glyph",
	"press",
	"drag",
	"hover",
	"release",
	"wheel",
	"finish",
	"undo",
	"clear",
	"connect",
	"mode",
	"op",
	"zoom",
	"pan",
	"pzoom",
	"ppan",
	"eval",
	"list",
	"render",
}

var opMap = func() map[string]int {
	m := make(map[string]int, len(opNames))
	for code, name := range opNames {
		m[name] = code
	}
	return m
}()

var errEmptyCommand = errors.New("empty command")

// parseCommand splits a line into ops. Ops are separated by ';', arguments
// by white space.
func parseCommand(line string) (*Command, error) {
	cmd := &Command{}
	for _, step := range strings.Split(line, ";") {
		fields := strings.Fields(step)
		if len(fields) == 0 {
			continue
		}
		code, ok := opMap[strings.ToLower(fields[0])]
		if !ok {
			return nil, fmt.Errorf("unknown command: %s", fields[0])
		}
		cmd.ops = append(cmd.ops, Op{code: code, args: fields[1:]})
		tracer().Debugf("parsed command: %v", fields)
	}
	if len(cmd.ops) == 0 {
		return nil, errEmptyCommand
	}
	return cmd, nil
}

// commandFn executes an op. It reports whether the canvases changed and
// whether to quit.
type commandFn func(*Intp, *Op) (changed, stop bool, err error)

var commands = map[int]commandFn{
	QUIT:    quitOp,
	HELP:    helpOp,
	LOAD:    loadOp,
	UNLOAD:  unloadOp,
	GLYPH:   glyphOp,
	PRESS:   pressOp,
	DRAG:    dragOp,
	HOVER:   hoverOp,
	RELEASE: releaseOp,
	WHEEL:   wheelOp,
	FINISH:  finishOp,
	UNDO:    undoOp,
	CLEAR:   clearOp,
	CONNECT: connectOp,
	MODE:    modeOp,
	POINTOP: pointOp,
	ZOOM:    zoomOp,
	PAN:     panOp,
	PZOOM:   pzoomOp,
	PPAN:    ppanOp,
	EVAL:    evalOp,
	LIST:    listOp,
	RENDER:  renderOp,
}

// execute runs the ops of a command in order and stops at the first error.
// After a change, both canvases are re-rendered. It reports whether to quit.
func (intp *Intp) execute(cmd *Command) bool {
	dirty := false
	defer func() {
		if dirty && intp.outdir != "" {
			if err := intp.render(true, true); err != nil {
				pterm.Error.Println(err)
			}
		}
	}()
	for _, op := range cmd.ops {
		f, ok := commands[op.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", op.code)
			return false
		}
		changed, stop, err := f(intp, &op)
		dirty = dirty || changed
		if err != nil {
			pterm.Error.Printf("%s: %v\n", opNames[op.code], err)
			return false
		}
		if stop {
			return true
		}
	}
	return false
}

// render writes the selected canvases as PNG files into the output
// directory, or into the working directory if none is set.
func (intp *Intp) render(canvas, preview bool) error {
	dir := intp.outdir
	if dir == "" {
		dir = "."
	}
	if canvas {
		img := intp.session.RenderMain(intp.canvas.W, intp.canvas.H)
		if err := surface.WritePNG(filepath.Join(dir, "canvas.png"), img); err != nil {
			return err
		}
	}
	if preview {
		img := intp.session.RenderPreview(intp.preview.W, intp.preview.H)
		if err := surface.WritePNG(filepath.Join(dir, "preview.png"), img); err != nil {
			return err
		}
	}
	return nil
}
