package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// canvasCells is the terminal area given to the drawing, leaving the bottom
// row for the status line.
func (m *model) canvasCells() (int, int) {
	cols := m.width
	rows := m.height - 1
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

// viewport describes the canvas in terminal cell coordinates.
func (m *model) viewport() Viewport {
	cols, rows := m.canvasCells()
	return Viewport{Left: 0, Top: 0, Width: float64(cols), Height: float64(rows)}
}

// cellPoint maps the centre of a terminal cell onto the canvas.
func (m *model) cellPoint(col, row int) Point {
	return m.editor.ToCanvas(float64(col)+0.5, float64(row)+0.5, m.viewport())
}

func (m *model) syncCanvasSize() {
	cols, rows := m.canvasCells()
	m.editor.Resize(float64(cols)*cellWidth, float64(rows)*cellHeight)
}

func writeClipboardText(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return clipboard.WriteAll(text)
}
