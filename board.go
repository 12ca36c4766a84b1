package main // import "github.com/tonobo/battlesnake-weighted"

type Board struct {
	Height  int      `json:"height"`
	Width   int      `json:"width"`
	Food    []Point  `json:"food"`
	Hazards []Point  `json:"hazards,omitempty"`
	Snakes  []*Snake `json:"snakes"`
}

func (b *Board) Outside(p Point) bool {
	return p.X < 0 || p.X >= b.Width || p.Y < 0 || p.Y >= b.Height
}

// Map is a column major occupancy grid, m[x][y] is the snake whose body
// covers the cell or nil.
type Map [][]*Snake

// NewMap marks every body segment of every snake on b.
func NewMap(b *Board) Map {
	m := make(Map, b.Width)
	for x := range m {
		m[x] = make([]*Snake, b.Height)
	}
	for _, snake := range b.Snakes {
		m.Mark(snake)
	}
	return m
}

func (m Map) Mark(snake *Snake) {
	for _, p := range snake.Body {
		if m.outside(p) {
			continue
		}
		m[p.X][p.Y] = snake
	}
}

// SnakeOn returns the snake covering p, nil for empty or outside cells.
func (m Map) SnakeOn(p Point) *Snake {
	if p.X < 0 || p.X >= len(m) || p.Y < 0 || p.Y >= len(m[p.X]) {
		return nil
	}
	return m[p.X][p.Y]
}

func (m Map) outside(p Point) bool {
	return p.X < 0 || p.X >= len(m) || p.Y < 0 || p.Y >= len(m[p.X])
}

// Blocked treats every body, including the deciding snake's, as a wall.
// Used by the space evaluation.
func (m Map) Blocked(p Point) bool {
	return m.outside(p) || m.SnakeOn(p) != nil
}

// BlockedFor is like Blocked but ignores the body of me, which vacates the
// cells ahead of it while it travels along a path.
func (m Map) BlockedFor(me *Snake, p Point) bool {
	if m.outside(p) {
		return true
	}
	s := m.SnakeOn(p)
	return s != nil && s.ID != me.ID
}
