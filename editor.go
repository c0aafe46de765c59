package main

import "fmt"

// Editor owns the control point grid, the current drag selection and the
// settings that shape both. It is driven from a single event loop.
type Editor struct {
	numLines  int
	numPoints int
	spacing   int
	hitRadius float64

	width  float64
	height float64

	grid       Grid
	selected   *Selection
	dragStartY float64
}

func NewEditor(numLines, numPoints, spacing int, hitRadius float64) (*Editor, error) {
	if numPoints < 2 {
		return nil, ErrTooFewPoints
	}
	if numLines < 1 {
		return nil, ErrTooFewLines
	}
	if hitRadius <= 0 {
		hitRadius = defaultHitRadius
	}
	return &Editor{
		numLines:  numLines,
		numPoints: numPoints,
		spacing:   spacing,
		hitRadius: hitRadius,
	}, nil
}

func (e *Editor) NumLines() int       { return e.numLines }
func (e *Editor) NumPoints() int      { return e.numPoints }
func (e *Editor) Spacing() int        { return e.spacing }
func (e *Editor) Width() float64      { return e.width }
func (e *Editor) Height() float64     { return e.height }
func (e *Editor) Grid() Grid          { return e.grid }
func (e *Editor) Dragging() bool      { return e.selected != nil }
func (e *Editor) DragStartY() float64 { return e.dragStartY }

func (e *Editor) Selected() (Selection, bool) {
	if e.selected == nil {
		return Selection{}, false
	}
	return *e.selected, true
}

// Resize lays out a fresh grid the first time the canvas gets a size and
// rescales the existing points afterwards. An empty canvas is ignored so the
// last usable size stays the reference for the next rescale.
func (e *Editor) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if e.grid == nil || e.width == 0 || e.height == 0 {
		e.width, e.height = width, height
		e.reset()
		return
	}
	e.grid.Rescale(e.width, e.height, width, height)
	e.width, e.height = width, height
}

func (e *Editor) reset() {
	grid, err := NewGrid(e.numLines, e.numPoints, e.width, e.height)
	if err != nil {
		return
	}
	e.grid = grid
	e.selected = nil
}

func (e *Editor) SetNumLines(n int) error {
	if n < 1 {
		return fmt.Errorf("lines %d: %w", n, ErrTooFewLines)
	}
	e.numLines = n
	e.reset()
	return nil
}

func (e *Editor) SetNumPoints(n int) error {
	if n < 2 {
		return fmt.Errorf("points %d: %w", n, ErrTooFewPoints)
	}
	e.numPoints = n
	e.reset()
	return nil
}

// SetSpacing only affects later drags; the grid is left as it is.
func (e *Editor) SetSpacing(n int) {
	e.spacing = n
}

// PointerDown starts a drag on the first control point within the hit radius.
func (e *Editor) PointerDown(p Point) bool {
	sel, ok := e.grid.SelectNearest(p.X, p.Y, e.hitRadius)
	if !ok {
		return false
	}
	e.selected = &sel
	e.dragStartY = p.Y
	return true
}

// PointerMove drags the selected point to p's height. Without a selection it
// does nothing.
func (e *Editor) PointerMove(p Point) bool {
	if e.selected == nil {
		return false
	}
	e.grid.DragTo(*e.selected, p.Y, float64(e.spacing))
	e.dragStartY = p.Y
	return true
}

// DragPoint applies one complete drag of sel to y without touching the
// pointer selection.
func (e *Editor) DragPoint(sel Selection, y float64) error {
	if !e.grid.valid(sel) {
		return fmt.Errorf("line %d point %d: %w", sel.Line, sel.Point, ErrNoSuchPoint)
	}
	e.grid.DragTo(sel, y, float64(e.spacing))
	return nil
}

func (e *Editor) EndDrag() {
	e.selected = nil
}

// Paths builds one smoothed path per line.
func (e *Editor) Paths() []Path {
	paths := make([]Path, 0, len(e.grid))
	for _, line := range e.grid {
		path, err := BuildSmoothedPath(line)
		if err != nil {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// Viewport describes where the canvas sits in client space and how large it
// is there. Client coordinates are whatever the input source reports: pixels
// for a pointer, cells for a terminal mouse.
type Viewport struct {
	Left, Top     float64
	Width, Height float64
}

// ToCanvas maps a client-space position onto canvas pixels. Every input
// source goes through here.
func (e *Editor) ToCanvas(clientX, clientY float64, vp Viewport) Point {
	x := clientX - vp.Left
	y := clientY - vp.Top
	if vp.Width > 0 {
		x *= e.width / vp.Width
	}
	if vp.Height > 0 {
		y *= e.height / vp.Height
	}
	return Point{X: x, Y: y}
}
