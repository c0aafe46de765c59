package main

import (
	"strconv"
	"strings"
)

type QuadSegment struct {
	Control Point
	End     Point
}

// Path is a move-to followed by quadratic segments. The terminal renderer,
// the PNG renderer and the SVG exporter all draw from the same Path values.
type Path struct {
	Start    Point
	Segments []QuadSegment
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// BuildSmoothedPath curves through the midpoints between inner control points
// and ends exactly on the last one.
func BuildSmoothedPath(points []Point) (Path, error) {
	n := len(points)
	if n < 2 {
		return Path{}, ErrTooFewPoints
	}

	path := Path{
		Start:    points[0],
		Segments: make([]QuadSegment, 0, n-1),
	}
	for i := 1; i < n-2; i++ {
		path.Segments = append(path.Segments, QuadSegment{
			Control: points[i],
			End:     midpoint(points[i], points[i+1]),
		})
	}
	path.Segments = append(path.Segments, QuadSegment{
		Control: points[n-2],
		End:     points[n-1],
	})
	return path, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SVGData renders the path as the value of an SVG "d" attribute.
func (p Path) SVGData() string {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(formatCoord(p.Start.X))
	b.WriteByte(' ')
	b.WriteString(formatCoord(p.Start.Y))
	for _, seg := range p.Segments {
		b.WriteString(" Q ")
		b.WriteString(formatCoord(seg.Control.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(seg.Control.Y))
		b.WriteByte(' ')
		b.WriteString(formatCoord(seg.End.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(seg.End.Y))
	}
	return b.String()
}

// Flatten samples every segment into straight pieces no longer than roughly
// step pixels. The first returned point is Start and the last is the final
// segment's end point.
func (p Path) Flatten(step float64) []Point {
	if step <= 0 {
		step = 1
	}
	out := []Point{p.Start}
	from := p.Start
	for _, seg := range p.Segments {
		length := distance(from, seg.Control) + distance(seg.Control, seg.End)
		n := int(length/step) + 1
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			out = append(out, quadAt(from, seg.Control, seg.End, t))
		}
		from = seg.End
	}
	return out
}

// quadAt evaluates the segment by repeated interpolation, so coordinates
// shared by all three points come back exactly.
func quadAt(p0, c, p1 Point, t float64) Point {
	return lerp(lerp(p0, c, t), lerp(c, p1, t), t)
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

func distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	// Manhattan length over-estimates the arc, which only adds samples.
	return dx + dy
}
