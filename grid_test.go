package main

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestNewGridLayout(t *testing.T) {
	cases := []struct {
		lines, points int
		w, h          float64
	}{
		{1, 2, 100, 50},
		{3, 3, 200, 100},
		{10, 5, 640, 368},
		{4, 7, 333, 97},
	}
	for _, c := range cases {
		g, err := NewGrid(c.lines, c.points, c.w, c.h)
		if err != nil {
			t.Fatalf("NewGrid(%d, %d): %v", c.lines, c.points, err)
		}
		if g.Lines() != c.lines {
			t.Fatalf("lines = %d, want %d", g.Lines(), c.lines)
		}
		step := c.w / float64(c.points-1)
		for i, line := range g {
			if len(line) != c.points {
				t.Fatalf("line %d has %d points, want %d", i, len(line), c.points)
			}
			for j, p := range line {
				if p.X != float64(j)*step {
					t.Errorf("grid[%d][%d].X = %v, want %v", i, j, p.X, float64(j)*step)
				}
				if p.Y != c.h/2 {
					t.Errorf("grid[%d][%d].Y = %v, want %v", i, j, p.Y, c.h/2)
				}
			}
		}
	}
}

func TestNewGridRejectsDegenerateSizes(t *testing.T) {
	if _, err := NewGrid(3, 1, 100, 100); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("points=1: err = %v, want ErrTooFewPoints", err)
	}
	if _, err := NewGrid(3, 0, 100, 100); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("points=0: err = %v, want ErrTooFewPoints", err)
	}
	if _, err := NewGrid(0, 5, 100, 100); !errors.Is(err, ErrTooFewLines) {
		t.Errorf("lines=0: err = %v, want ErrTooFewLines", err)
	}
}

func TestRescaleRoundTrip(t *testing.T) {
	g, _ := NewGrid(4, 6, 640, 368)
	g.DragTo(Selection{Line: 1, Point: 2}, 91.25, 20)
	orig := g.Clone()

	g.Rescale(640, 368, 1024, 200)
	g.Rescale(1024, 200, 640, 368)

	for i := range g {
		for j := range g[i] {
			if math.Abs(g[i][j].X-orig[i][j].X) > 1e-9 || math.Abs(g[i][j].Y-orig[i][j].Y) > 1e-9 {
				t.Fatalf("grid[%d][%d] = %v, want %v", i, j, g[i][j], orig[i][j])
			}
		}
	}
}

func TestRescaleZeroOldSizeIsNoop(t *testing.T) {
	g, _ := NewGrid(2, 3, 100, 100)
	orig := g.Clone()
	g.Rescale(0, 100, 200, 200)
	g.Rescale(100, 0, 200, 200)
	if !reflect.DeepEqual(g, orig) {
		t.Fatalf("grid changed: %v, want %v", g, orig)
	}
}

func TestSelectNearestFirstMatchWins(t *testing.T) {
	g := Grid{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 4}, {X: 10, Y: 4}},
	}
	// (0, 3) is closer to line 1's point but line 0 is scanned first.
	sel, ok := g.SelectNearest(0, 3, 10)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel != (Selection{Line: 0, Point: 0}) {
		t.Errorf("sel = %+v, want line 0 point 0", sel)
	}

	// Within line 0, point 0 comes before point 1.
	sel, ok = g.SelectNearest(5, 0, 10)
	if !ok || sel != (Selection{Line: 0, Point: 0}) {
		t.Errorf("sel = %+v ok=%v, want line 0 point 0", sel, ok)
	}
}

func TestSelectNearestRadiusIsStrict(t *testing.T) {
	g := Grid{{{X: 0, Y: 0}, {X: 100, Y: 0}}}
	if _, ok := g.SelectNearest(10, 0, 10); ok {
		t.Error("point exactly on the radius should not be selected")
	}
	if _, ok := g.SelectNearest(50, 50, 10); ok {
		t.Error("far click should select nothing")
	}
	if sel, ok := g.SelectNearest(99, 1, 10); !ok || sel.Point != 1 {
		t.Errorf("sel = %+v ok=%v, want point 1", sel, ok)
	}
}

func TestDragToScenario(t *testing.T) {
	g := Grid{
		{{0, 50}, {50, 50}, {100, 50}},
		{{0, 50}, {50, 50}, {100, 50}},
		{{0, 50}, {50, 50}, {100, 50}},
	}
	g.DragTo(Selection{Line: 1, Point: 1}, 100, 20)

	want := Grid{
		{{0, 50}, {50, 80}, {100, 50}},
		{{0, 50}, {50, 100}, {100, 50}},
		{{0, 50}, {50, 120}, {100, 50}},
	}
	if !reflect.DeepEqual(g, want) {
		t.Fatalf("grid = %v, want %v", g, want)
	}
}

func TestDragToPropagation(t *testing.T) {
	const spacing = 15.0
	for line := 0; line < 6; line++ {
		for point := 0; point < 4; point++ {
			g, _ := NewGrid(6, 4, 300, 200)
			before := g.Clone()
			g.DragTo(Selection{Line: line, Point: point}, 73, spacing)

			for i := range g {
				for j := range g[i] {
					if j != point {
						if g[i][j] != before[i][j] {
							t.Fatalf("drag (%d,%d) changed column %d of line %d", line, point, j, i)
						}
						continue
					}
					want := 73 + spacing*float64(i-line)
					if g[i][j].Y != want {
						t.Errorf("drag (%d,%d): grid[%d][%d].Y = %v, want %v", line, point, i, j, g[i][j].Y, want)
					}
					if g[i][j].X != before[i][j].X {
						t.Errorf("drag (%d,%d): grid[%d][%d].X moved", line, point, i, j)
					}
				}
			}
		}
	}
}

func TestDragToIdempotent(t *testing.T) {
	g, _ := NewGrid(5, 5, 400, 300)
	g.DragTo(Selection{Line: 3, Point: 2}, 40, 20)
	g.DragTo(Selection{Line: 0, Point: 4}, 250, 20)
	sel := Selection{Line: 2, Point: 4}

	g.DragTo(sel, 120, 20)
	first := g.Clone()
	g.DragTo(sel, 120, 20)
	if !reflect.DeepEqual(g, first) {
		t.Fatalf("second drag changed grid: %v, want %v", g, first)
	}
}

func TestDragToOverwritesEarlierAdjustments(t *testing.T) {
	g, _ := NewGrid(3, 3, 100, 100)
	g.DragTo(Selection{Line: 0, Point: 1}, 10, 20)
	g.DragTo(Selection{Line: 2, Point: 1}, 90, 20)
	if got := g[0][1].Y; got != 50 {
		t.Errorf("line 0 y = %v, want 50 (last drag wins)", got)
	}
}

func TestDragToIgnoresInvalidSelection(t *testing.T) {
	g, _ := NewGrid(2, 3, 100, 100)
	orig := g.Clone()
	for _, sel := range []Selection{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		g.DragTo(sel, 5, 20)
	}
	if !reflect.DeepEqual(g, orig) {
		t.Fatal("invalid selection modified the grid")
	}
}
