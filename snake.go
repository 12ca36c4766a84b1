package main // import "github.com/tonobo/battlesnake-weighted"

type Snake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Body    []Point `json:"body"`
	Length  int     `json:"length"`
	Latency string  `json:"latency,omitempty"`
	Shout   string  `json:"shout,omitempty"`
	Squad   string  `json:"squad,omitempty"`
}

func (s *Snake) Head() Point {
	return s.Body[0]
}

func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Size is the reported length, or the body length for clients that omit it.
func (s *Snake) Size() int {
	if s.Length > 0 {
		return s.Length
	}
	return len(s.Body)
}

// Stacked reports whether two consecutive segments share a cell, which
// happens right after eating. A stacked tail does not vacate next turn.
func (s *Snake) Stacked() bool {
	for i := 1; i < len(s.Body); i++ {
		if s.Body[i] == s.Body[i-1] {
			return true
		}
	}
	return false
}

func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Collides reports whether moving a head onto p hits this snake next turn.
// The tail is safe unless the snake is stacked.
func (s *Snake) Collides(p Point) bool {
	if !s.Occupies(p) {
		return false
	}
	return p != s.Tail() || s.Stacked()
}
