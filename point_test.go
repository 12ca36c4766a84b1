package main

import "testing"

func TestPointDistance(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{3, 4}, 7},
		{Point{5, 5}, Point{2, 9}, 7},
		{Point{-1, 0}, Point{1, 0}, 2},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("%s.Distance(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("distance not symmetric for %s %s", tt.a, tt.b)
		}
	}
}

func TestDirectionTo(t *testing.T) {
	p := Point{3, 3}
	for i, n := range p.Neighbours() {
		d, ok := DirectionTo(p, n)
		if !ok || d != Directions[i] {
			t.Errorf("DirectionTo(%s, %s) = %s %t, want %s", p, n, d, ok, Directions[i])
		}
	}
	if _, ok := DirectionTo(p, Point{5, 3}); ok {
		t.Error("two cells away is not a step")
	}
	if _, ok := DirectionTo(p, p); ok {
		t.Error("same cell is not a step")
	}
}

func TestBoardOutside(t *testing.T) {
	b := &Board{Width: 11, Height: 7}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, false},
		{Point{10, 6}, false},
		{Point{-1, 3}, true},
		{Point{11, 3}, true},
		{Point{3, 7}, true},
		{Point{3, -1}, true},
	}
	for _, tt := range tests {
		if got := b.Outside(tt.p); got != tt.want {
			t.Errorf("Outside(%s) = %t, want %t", tt.p, got, tt.want)
		}
	}
}
