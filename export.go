package main

import (
	"fmt"
	"os"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// exportSVG writes parallel-lines.svg into the save directory, asking first
// when it would replace an existing file.
func (m *model) exportSVG(force bool) {
	path := m.config.GetSavePath(exportFilenameSVG)
	if !force && m.config.Confirmations && fileExists(path) {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmOverwriteSVG
		return
	}
	data := m.editor.SVG()
	if err := os.WriteFile(path, data, 0644); err != nil {
		L().Error("export.svg", "path", path, "error", err)
		m.errorMessage = fmt.Sprintf("Error saving SVG: %v", err)
		return
	}
	L().Info("export.svg", "path", path, "mime", svgMIMEType, "bytes", len(data))
	m.successMessage = fmt.Sprintf("Saved %s", path)
}

func (m *model) exportPNG(force bool) {
	path := m.config.GetSavePath(exportFilenamePNG)
	if !force && m.config.Confirmations && fileExists(path) {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmOverwritePNG
		return
	}
	if err := m.editor.ExportToPNG(path, m.config.PNGCaption); err != nil {
		L().Error("export.png", "path", path, "error", err)
		m.errorMessage = fmt.Sprintf("Error exporting PNG: %v", err)
		return
	}
	L().Info("export.png", "path", path)
	m.successMessage = fmt.Sprintf("Exported %s", path)
}

func (m *model) copySVG() {
	if err := writeClipboardText(string(m.editor.SVG())); err != nil {
		L().Error("export.clipboard", "error", err)
		m.errorMessage = fmt.Sprintf("Error copying SVG: %v", err)
		return
	}
	m.successMessage = "SVG copied to clipboard"
}

// exportVisualTXT writes the canvas exactly as the terminal shows it, minus
// colours and the keyboard cursor.
func (m *model) exportVisualTXT(filename string) error {
	cols, rows := m.canvasCells()
	if cols < 1 || rows < 1 {
		return fmt.Errorf("no canvas available")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range m.editor.RenderCanvas(cols, rows).Rows() {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}
