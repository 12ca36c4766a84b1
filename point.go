package main // import "github.com/tonobo/battlesnake-weighted"

import (
	"fmt"

	"github.com/joonazan/vec2"
)

// Point is a board cell. (0, 0) is the bottom left corner.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// Add moves p by the unit vector of d.
func (p Point) Add(d Direction) Point {
	v := d.Vec()
	return Point{X: p.X + int(v.X), Y: p.Y + int(v.Y)}
}

// Distance is the manhattan distance between two cells.
func (p Point) Distance(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Neighbours returns the four axis adjacent cells in Directions order.
// Cells outside the board are included.
func (p Point) Neighbours() [4]Point {
	var n [4]Point
	for i, d := range Directions {
		n[i] = p.Add(d)
	}
	return n
}

// DirectionTo maps a single step from p to next onto a direction.
// ok is false when next is not adjacent to p.
func DirectionTo(p, next Point) (Direction, bool) {
	delta := next.Vec().Minus(p.Vec())
	for _, d := range Directions {
		if d.Vec() == delta {
			return d, true
		}
	}
	return Up, false
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
