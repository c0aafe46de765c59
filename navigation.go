package main

import tea "github.com/charmbracelet/bubbletea"

// handleNavigation moves the keyboard cursor. While a point is grabbed the
// vertical moves drag it along, which is the keyboard path to PointerMove.
func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	if m.editor.Dragging() {
		m.editor.PointerMove(m.cellPoint(m.cursorX, m.cursorY))
	}
	return *m, nil
}

// toggleGrab picks up the point under the keyboard cursor, or drops the one
// being dragged.
func (m *model) toggleGrab() {
	if m.editor.Dragging() {
		m.editor.EndDrag()
		return
	}
	if !m.editor.PointerDown(m.cellPoint(m.cursorX, m.cursorY)) {
		m.errorMessage = "No control point under cursor"
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	cols, rows := m.canvasCells()
	if m.cursorX >= cols {
		m.cursorX = cols - 1
	}
	if m.cursorY >= rows {
		m.cursorY = rows - 1
	}
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
}
