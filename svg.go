package main

import (
	"bytes"
	"fmt"
	"os"
)

// SVG serializes the current grid as a standalone SVG document the size of
// the canvas, one stroked path per line.
func (e *Editor) SVG() []byte {
	return renderSVG(e.Paths(), e.width, e.height)
}

func renderSVG(paths []Path, width, height float64) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%s" height="%s" xmlns="http://www.w3.org/2000/svg">`,
		formatCoord(width), formatCoord(height))
	for _, p := range paths {
		fmt.Fprintf(&buf, `<path d="%s" stroke="black" fill="none"/>`, p.SVGData())
	}
	buf.WriteString("</svg>")
	return buf.Bytes()
}

func (e *Editor) SaveSVG(filename string) error {
	if err := os.WriteFile(filename, e.SVG(), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
