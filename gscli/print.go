package main

import (
	"fmt"

	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/glyphstroke/store"
	"github.com/pterm/pterm"
)

// printCurves prints finished curves and the curve under construction as a
// table.
func printCurves(snap store.Snapshot) {
	if len(snap.Finished) == 0 && len(snap.Current) == 0 {
		pterm.Println("no curves")
		return
	}
	data := [][]string{
		{"Curve", "Degree", "Control Points"},
	}
	for i, c := range snap.Finished {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			formatDegree(c),
			c.String(),
		})
	}
	if len(snap.Current) > 0 {
		data = append(data, []string{
			"current",
			formatDegree(snap.Current),
			snap.Current.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatDegree(c curve.Curve) string {
	if !c.Renderable() {
		return "-"
	}
	return fmt.Sprintf("%d", c.Degree())
}
