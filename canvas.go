package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	pngLineColor   = color.Black
	pngMarkerColor = color.RGBA{0x66, 0x66, 0x66, 0xff}
)

// Braille cells pack 2x4 dots, so every dot covers a quarter of a cell's
// width and height in canvas pixels.
const (
	dotWidth  = cellWidth / 2
	dotHeight = cellHeight / 4
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellLine
	cellMarker
)

// Canvas is a braille raster of the editor's canvas, sized in terminal cells.
type Canvas struct {
	width  int
	height int
	dots   [][]uint8
	kinds  [][]cellKind
}

func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	dots := make([][]uint8, height)
	kinds := make([][]cellKind, height)
	for i := range dots {
		dots[i] = make([]uint8, width)
		kinds[i] = make([]cellKind, width)
	}
	return &Canvas{width: width, height: height, dots: dots, kinds: kinds}
}

// setDot lights the braille dot at dot coordinates (2x4 per cell).
func (c *Canvas) setDot(dx, dy int, kind cellKind) {
	if dx < 0 || dy < 0 {
		return
	}
	cx, rx := dx/2, dx%2
	cy, ry := dy/4, dy%4
	if cx >= c.width || cy >= c.height {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.dots[cy][cx] |= bit
	if kind > c.kinds[cy][cx] {
		c.kinds[cy][cx] = kind
	}
}

func toDot(p Point) (int, int) {
	return int(math.Floor(p.X / dotWidth)), int(math.Floor(p.Y / dotHeight))
}

// drawLine runs Bresenham between two dots.
func (c *Canvas) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setDot(x0, y0, cellLine)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) StrokePath(p Path) {
	pts := p.Flatten(dotWidth)
	for i := 0; i < len(pts)-1; i++ {
		x0, y0 := toDot(pts[i])
		x1, y1 := toDot(pts[i+1])
		c.drawLine(x0, y0, x1, y1)
	}
}

// DrawMarker fills the dots of a disc around p.
func (c *Canvas) DrawMarker(p Point, radius float64) {
	minX, minY := toDot(Point{X: p.X - radius, Y: p.Y - radius})
	maxX, maxY := toDot(Point{X: p.X + radius, Y: p.Y + radius})
	cx, cy := toDot(p)
	c.setDot(cx, cy, cellMarker)
	for dy := minY; dy <= maxY; dy++ {
		for dx := minX; dx <= maxX; dx++ {
			centre := Point{X: (float64(dx) + 0.5) * dotWidth, Y: (float64(dy) + 0.5) * dotHeight}
			if math.Hypot(centre.X-p.X, centre.Y-p.Y) <= radius {
				c.setDot(dx, dy, cellMarker)
			}
		}
	}
}

func (c *Canvas) Kind(x, y int) cellKind {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return cellEmpty
	}
	return c.kinds[y][x]
}

// Rows returns one string of braille runes per terminal row, without styling.
func (c *Canvas) Rows() []string {
	out := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		row := make([]rune, c.width)
		for x := 0; x < c.width; x++ {
			if mask := c.dots[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// RenderCanvas strokes every line first and stamps the markers afterwards so
// no line is ever drawn over a control point.
func (e *Editor) RenderCanvas(cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	for _, p := range e.Paths() {
		c.StrokePath(p)
	}
	for _, line := range e.grid {
		for _, pt := range line {
			c.DrawMarker(pt, markerRadius)
		}
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ExportToPNG paints the same paths the SVG export writes onto a white
// canvas, markers on top, and saves the image.
func (e *Editor) ExportToPNG(filename string, caption bool) error {
	dc, err := e.paintPNG(caption)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func (e *Editor) paintPNG(caption bool) (*gg.Context, error) {
	w := int(math.Round(e.width))
	h := int(math.Round(e.height))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("nothing to export: canvas is %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetLineWidth(1.0)
	dc.SetColor(pngLineColor)
	for _, p := range e.Paths() {
		dc.MoveTo(p.Start.X, p.Start.Y)
		for _, seg := range p.Segments {
			dc.QuadraticTo(seg.Control.X, seg.Control.Y, seg.End.X, seg.End.Y)
		}
		dc.Stroke()
	}

	dc.SetColor(pngMarkerColor)
	for _, line := range e.grid {
		for _, pt := range line {
			dc.DrawCircle(pt.X, pt.Y, markerRadius)
			dc.Fill()
		}
	}

	if caption {
		if err := e.drawCaption(dc); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

func (e *Editor) drawCaption(dc *gg.Context) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(pngLineColor)
	text := fmt.Sprintf("%d lines · %d points · spacing %d", e.numLines, e.numPoints, e.spacing)
	dc.DrawString(text, 8, float64(dc.Height())-8)
	return nil
}
