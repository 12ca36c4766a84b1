package main

import "testing"

func TestSpaceFactor(t *testing.T) {
	tests := []struct {
		area, length int
		want         float64
	}{
		{0, 4, -1},
		{2, 4, -0.5},
		{3, 4, -0.25},
		{4, 4, 0},
		{5, 4, 0.2},
		{6, 10, -0.4},
		{11, 10, 0.1},
		{12, 10, 0.2},
		{100, 10, 0.2},
	}
	for _, tt := range tests {
		got := SpaceFactor(tt.area, tt.length, 0.2)
		if !approx(got, tt.want) {
			t.Errorf("SpaceFactor(%d, %d) = %f, want %f", tt.area, tt.length, got, tt.want)
		}
		if got > 0.2 {
			t.Errorf("SpaceFactor(%d, %d) = %f above the cap", tt.area, tt.length, got)
		}
	}
	for l := 1; l < 30; l++ {
		if f := SpaceFactor(l, l, 0.2); f != 0 {
			t.Errorf("area == length %d gave %f", l, f)
		}
	}
}

func TestFloodFill(t *testing.T) {
	// a wall along x=2 splits the board into 10 cells left and 10 right
	wall := newSnake("wall", 100, Point{2, 0}, Point{2, 1}, Point{2, 2}, Point{2, 3}, Point{2, 4})
	m := NewMap(newBoard(5, 5, nil, wall))

	if got := m.FloodFill(Point{0, 0}, 100); got != 10 {
		t.Errorf("pocket = %d, want 10", got)
	}
	if got := m.FloodFill(Point{4, 4}, 100); got != 10 {
		t.Errorf("pocket = %d, want 10", got)
	}
	if got := m.FloodFill(Point{0, 0}, 3); got != 4 {
		t.Errorf("capped fill = %d, want 4", got)
	}

	open := NewMap(newBoard(11, 11, nil))
	if got := open.FloodFill(Point{5, 5}, 1000); got != 121 {
		t.Errorf("open board = %d, want 121", got)
	}
	if got := open.FloodFill(Point{5, 5}, FloodLimit(6)); got != FloodLimit(6)+1 {
		t.Errorf("capped fill = %d, want %d", got, FloodLimit(6)+1)
	}
}

func TestEvaluateSpace(t *testing.T) {
	// the cells left of our head form a pocket of two
	me := newSnake("me", 100, Point{2, 0}, Point{2, 1}, Point{2, 2}, Point{2, 3})
	rival := newSnake("r", 100, Point{1, 2}, Point{1, 1}, Point{0, 1})
	tr := NewTurn(newBoard(5, 5, nil, me, rival), me, DefaultTuning())
	tr.Moves = NewMovementSet(me.Head())
	tr.filterBoundary()
	tr.filterSelf()
	tr.evaluateSpace()

	if w := tr.Moves.Weight(Left); !approx(w, 0.5) {
		t.Errorf("left = %f, want 0.5", w)
	}
	if w := tr.Moves.Weight(Right); !approx(w, 1.2) {
		t.Errorf("right = %f, want 1.2", w)
	}
	if tr.Moves.Len() != 2 {
		t.Errorf("expected left and right only: %s", tr.Moves)
	}
}
