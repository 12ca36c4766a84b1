package main

import "testing"

func filtered(b *Board, me *Snake, filters ...func(*Turn)) *MovementSet {
	tr := NewTurn(b, me, DefaultTuning())
	tr.Moves = NewMovementSet(me.Head())
	for _, f := range filters {
		f(tr)
	}
	return tr.Moves
}

func TestFilterSelfTail(t *testing.T) {
	// the tail sits left of the head
	body := []Point{{5, 5}, {5, 4}, {4, 4}, {4, 5}}

	me := newSnake("me", 100, body...)
	moves := filtered(newBoard(11, 11, nil, me), me, (*Turn).filterSelf)
	if !moves.Present(Left) {
		t.Error("tail must be safe when not stacked")
	}
	if moves.Present(Down) {
		t.Error("neck must be eliminated")
	}

	stacked := newSnake("me", 100, append(append([]Point{}, body...), Point{4, 5})...)
	if !stacked.Stacked() {
		t.Fatal("expected a stacked snake")
	}
	moves = filtered(newBoard(11, 11, nil, stacked), stacked, (*Turn).filterSelf)
	if moves.Present(Left) {
		t.Error("tail of a stacked snake must be eliminated")
	}
}

func TestFilterRivalProximity(t *testing.T) {
	me := scenarioSnake(100)
	tests := []struct {
		name  string
		rival *Snake
		want  float64
	}{
		{"head on target", newSnake("r", 100, Point{5, 6}, Point{5, 7}, Point{5, 8}), 0},
		{"one away", newSnake("r", 100, Point{5, 7}, Point{5, 8}, Point{5, 9}), 0.5},
		{"two away", newSnake("r", 100, Point{5, 8}, Point{5, 9}, Point{5, 10}), 1},
	}
	prev := -1.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := filtered(newBoard(11, 11, nil, me, tt.rival), me, (*Turn).filterRivals)
			if !moves.Present(Up) {
				t.Fatal("proximity must not eliminate")
			}
			w := moves.Weight(Up)
			if !approx(w, tt.want) {
				t.Errorf("up = %f, want %f", w, tt.want)
			}
			if w < prev {
				t.Errorf("weight dropped from %f to %f with more distance", prev, w)
			}
			prev = w
		})
	}
}

func TestFilterRivalAccumulates(t *testing.T) {
	me := scenarioSnake(100)
	a := newSnake("a", 100, Point{4, 6}, Point{3, 6}, Point{2, 6})
	b := newSnake("b", 100, Point{6, 6}, Point{7, 6}, Point{8, 6})
	moves := filtered(newBoard(11, 11, nil, me, a, b), me, (*Turn).filterRivals)
	if w := moves.Weight(Up); !approx(w, 0.25) {
		t.Errorf("up = %f, want 0.25", w)
	}
}

func TestFilterRivalBody(t *testing.T) {
	me := scenarioSnake(100)
	// the rival body crosses (6,5), right of our head, far from its head
	body := []Point{{9, 8}, {9, 7}, {9, 6}, {8, 6}, {7, 6}, {6, 6}, {6, 5}}

	tests := []struct {
		name    string
		body    []Point
		present bool
	}{
		{"tail", body, true},
		{"stacked tail", append(append([]Point{}, body...), Point{6, 5}), false},
		{"body", append(append([]Point{}, body...), Point{7, 5}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rival := newSnake("r", 100, tt.body...)
			moves := filtered(newBoard(11, 11, nil, me, rival), me, (*Turn).filterRivals)
			if moves.Present(Right) != tt.present {
				t.Errorf("right present = %t, want %t", moves.Present(Right), tt.present)
			}
			if !moves.Present(Up) {
				t.Error("up must survive")
			}
		})
	}
}

func TestFilterBoundary(t *testing.T) {
	me := newSnake("me", 100, Point{0, 0})
	moves := filtered(newBoard(3, 3, nil, me), me, (*Turn).filterBoundary)
	if moves.Present(Left) || moves.Present(Down) {
		t.Errorf("expected left and down gone: %s", moves)
	}
	if !moves.Present(Up) || !moves.Present(Right) {
		t.Errorf("expected up and right: %s", moves)
	}
}
