package main

import (
	"fmt"
	"strings"
)

var helpLines = []string{
	"Parallel Lines Help",
	"===================",
	"",
	"Drawing:",
	"--------",
	"  Mouse drag       Drag a control point; the same point on every other line follows",
	"  h/←/j/↓/k/↑/l/→  Move the cursor (Shift moves 2x)",
	"  Space/Enter      Grab the point under the cursor, or drop the grabbed point",
	"  j/k while held   Drag the grabbed point down/up",
	"  Esc              Drop the grabbed point and clear messages",
	"",
	"Settings:",
	"---------",
	"  n                Number of lines (rebuilds the grid)",
	"  p                Control points per line, at least 2 (rebuilds the grid)",
	"  s                Spacing between lines for later drags",
	"  r                Reset the grid to flat lines",
	"",
	"Export:",
	"-------",
	"  e                Save parallel-lines.svg",
	"  E                Save parallel-lines.png",
	"  y                Copy the SVG document to the clipboard",
	"  T                Save the terminal view as parallel-lines.txt",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	cols, rows := m.canvasCells()
	var result strings.Builder

	if cols > 0 && rows > 0 {
		canvas := m.editor.RenderCanvas(cols, rows)
		for y, line := range canvas.Rows() {
			result.WriteString(m.styleRow(canvas, []rune(line), y))
			result.WriteString("\n")
		}
	}

	result.WriteString(m.statusLine())
	return result.String()
}

// styleRow colours runs of cells that share a kind together, so a row costs a
// handful of style renders rather than one per cell.
func (m model) styleRow(canvas *Canvas, line []rune, y int) string {
	const cursorKind = cellMarker + 1

	kindAt := func(x int) cellKind {
		if x == m.cursorX && y == m.cursorY && m.mode == ModeNormal {
			return cursorKind
		}
		return canvas.Kind(x, y)
	}

	var b strings.Builder
	start := 0
	for start < len(line) {
		kind := kindAt(start)
		end := start + 1
		for end < len(line) && kindAt(end) == kind {
			end++
		}
		run := string(line[start:end])
		switch kind {
		case cursorKind:
			if run == " " {
				run = "█"
			}
			b.WriteString(m.theme.Cursor.Render(run))
		case cellMarker:
			if m.editor.Dragging() {
				b.WriteString(m.theme.Active.Render(run))
			} else {
				b.WriteString(m.theme.Marker.Render(run))
			}
		case cellLine:
			b.WriteString(m.theme.Line.Render(run))
		default:
			b.WriteString(run)
		}
		start = end
	}
	return b.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeNumberInput:
		return m.theme.Prompt.Render(m.input.View()) + m.theme.Status.Render("  (Enter to apply, Esc to cancel)")
	case ModeConfirm:
		return m.theme.Prompt.Render(m.confirmPrompt())
	}

	if m.errorMessage != "" {
		return m.theme.Error.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return m.theme.Success.Render(m.successMessage)
	}

	status := fmt.Sprintf("%s | lines %d | points %d | spacing %d | %dx%d",
		m.modeString(), m.editor.NumLines(), m.editor.NumPoints(), m.editor.Spacing(),
		int(m.editor.Width()), int(m.editor.Height()))
	if sel, ok := m.editor.Selected(); ok {
		status += fmt.Sprintf(" | line %d point %d y=%.1f", sel.Line, sel.Point, m.editor.DragStartY())
	}
	status += " | ? for help"
	return m.theme.Status.Render(status)
}

func (m model) confirmPrompt() string {
	switch m.confirmAction {
	case ConfirmOverwriteSVG:
		return fmt.Sprintf("%s exists. Overwrite? (y/n)", exportFilenameSVG)
	case ConfirmOverwritePNG:
		return fmt.Sprintf("%s exists. Overwrite? (y/n)", exportFilenamePNG)
	default:
		return "Quit? (y/n)"
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNumberInput:
		return "INPUT"
	case ModeConfirm:
		return "CONFIRM"
	}
	if m.editor.Dragging() {
		return "DRAG"
	}
	return "NORMAL"
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 {
		visible = len(helpLines)
	}
	start := m.helpScroll
	if start > len(helpLines) {
		start = len(helpLines)
	}
	end := start + visible
	if end > len(helpLines) {
		end = len(helpLines)
	}

	var b strings.Builder
	for i, line := range helpLines[start:end] {
		if start+i == 0 {
			b.WriteString(m.theme.Title.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("j/k to scroll, any other key to close"))
	return b.String()
}
