package main

import (
	"errors"
	"math"
)

var (
	ErrTooFewPoints = errors.New("a line needs at least 2 control points")
	ErrTooFewLines  = errors.New("the grid needs at least 1 line")
	ErrNoSuchPoint  = errors.New("no such control point")
)

type Point struct {
	X, Y float64
}

// Grid holds every line's control points. Index order is vertical stacking,
// line 0 is the top one.
type Grid [][]Point

type Selection struct {
	Line  int
	Point int
}

// NewGrid lays out lines control polygons as flat horizontal lines through the
// vertical centre, with points spread evenly from 0 to width.
func NewGrid(lines, points int, width, height float64) (Grid, error) {
	if points < 2 {
		return nil, ErrTooFewPoints
	}
	if lines < 1 {
		return nil, ErrTooFewLines
	}

	step := width / float64(points-1)
	grid := make(Grid, lines)
	for i := range grid {
		line := make([]Point, points)
		for j := range line {
			line[j] = Point{X: float64(j) * step, Y: height / 2}
		}
		grid[i] = line
	}
	return grid, nil
}

func (g Grid) Lines() int {
	return len(g)
}

func (g Grid) PointsPerLine() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, line := range g {
		out[i] = append([]Point(nil), line...)
	}
	return out
}

func (g Grid) valid(sel Selection) bool {
	return sel.Line >= 0 && sel.Line < len(g) && sel.Point >= 0 && sel.Point < len(g[sel.Line])
}

// Rescale stretches every point by the ratio between the new and old canvas
// size. A zero-sized previous canvas leaves the grid alone.
func (g Grid) Rescale(oldW, oldH, newW, newH float64) {
	if oldW == 0 || oldH == 0 {
		return
	}
	scaleX := newW / oldW
	scaleY := newH / oldH
	for i := range g {
		for j := range g[i] {
			g[i][j].X *= scaleX
			g[i][j].Y *= scaleY
		}
	}
}

// SelectNearest returns the first point, scanning lines then points in index
// order, that lies strictly within radius of (x, y). It is not the closest one.
func (g Grid) SelectNearest(x, y, radius float64) (Selection, bool) {
	for i, line := range g {
		for j, p := range line {
			if math.Hypot(x-p.X, y-p.Y) < radius {
				return Selection{Line: i, Point: j}, true
			}
		}
	}
	return Selection{}, false
}

// DragTo moves the selected point to newY and places the same column of every
// other line spacing pixels apart per line index, above or below it. The
// column is recomputed from newY alone, so repeated calls are idempotent and
// earlier adjustments to that column are overwritten.
func (g Grid) DragTo(sel Selection, newY, spacing float64) {
	if !g.valid(sel) {
		return
	}
	for i := range g {
		if sel.Point >= len(g[i]) {
			continue
		}
		g[i][sel.Point].Y = newY + spacing*float64(i-sel.Line)
	}
}
