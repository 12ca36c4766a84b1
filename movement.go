package main // import "github.com/tonobo/battlesnake-weighted"

import (
	"fmt"
	"strings"

	"github.com/joonazan/vec2"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions is the fixed iteration order used everywhere a turn walks its
// candidates.
var Directions = [...]Direction{Up, Down, Left, Right}

var (
	direction2Vector = [...]vec2.Vector{
		Up:    vec2.Vector{X: 0, Y: 1},
		Down:  vec2.Vector{X: 0, Y: -1},
		Left:  vec2.Vector{X: -1, Y: 0},
		Right: vec2.Vector{X: 1, Y: 0},
	}
	direction2Name = [...]string{
		Up:    "up",
		Down:  "down",
		Left:  "left",
		Right: "right",
	}
)

func (d Direction) Vec() vec2.Vector {
	return direction2Vector[d]
}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return direction2Name[d]
}

// MarshalText lets a direction go straight into a move response.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Movement is one candidate step of the current turn.
type Movement struct {
	Direction Direction
	Target    Point
	Weight    float64
}

// Rand is the source used to break ties between equally weighted
// movements. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// MovementSet holds one slot per direction. A nil slot is an eliminated
// movement and stays nil for the rest of the turn.
type MovementSet struct {
	slots [len(Directions)]*Movement
}

func NewMovementSet(head Point) *MovementSet {
	s := &MovementSet{}
	for _, d := range Directions {
		s.slots[d] = &Movement{Direction: d, Target: head.Add(d), Weight: 1.0}
	}
	return s
}

func (s *MovementSet) Eliminate(d Direction) {
	s.slots[d] = nil
}

func (s *MovementSet) Present(d Direction) bool {
	return s.slots[d] != nil
}

// SetWeight overwrites the weight of a present movement. Negative weights are
// clamped to zero.
func (s *MovementSet) SetWeight(d Direction, w float64) {
	m := s.slots[d]
	if m == nil {
		return
	}
	if w < 0 {
		w = 0
	}
	m.Weight = w
}

// Scale multiplies the weight of a present movement by f.
func (s *MovementSet) Scale(d Direction, f float64) {
	s.SetWeight(d, s.Weight(d)*f)
}

func (s *MovementSet) Weight(d Direction) float64 {
	if m := s.slots[d]; m != nil {
		return m.Weight
	}
	return 0
}

// Movements returns the present movements in Directions order.
func (s *MovementSet) Movements() Movements {
	moves := make(Movements, 0, len(s.slots))
	for _, m := range s.slots {
		if m != nil {
			moves = append(moves, m)
		}
	}
	return moves
}

func (s *MovementSet) Len() int {
	n := 0
	for _, m := range s.slots {
		if m != nil {
			n++
		}
	}
	return n
}

// Pick returns the direction with the highest weight. Ties are broken
// uniformly with r. ok is false when every movement was eliminated.
func (s *MovementSet) Pick(r Rand) (d Direction, ok bool) {
	best := Movements{}
	for _, m := range s.Movements() {
		switch {
		case len(best) == 0 || m.Weight > best[0].Weight:
			best = Movements{m}
		case m.Weight == best[0].Weight:
			best = append(best, m)
		}
	}
	if len(best) == 0 {
		return Up, false
	}
	if len(best) == 1 {
		return best[0].Direction, true
	}
	return best[r.Intn(len(best))].Direction, true
}

func (s *MovementSet) String() string {
	var b strings.Builder
	for _, d := range Directions {
		if m := s.slots[d]; m != nil {
			fmt.Fprintf(&b, "%s:%s=%.3f ", d, m.Target, m.Weight)
		} else {
			fmt.Fprintf(&b, "%s:- ", d)
		}
	}
	return strings.TrimSpace(b.String())
}

type Movements []*Movement

func (p Movements) Len() int           { return len(p) }
func (p Movements) Less(i, j int) bool { return p[i].Weight < p[j].Weight }
func (p Movements) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
