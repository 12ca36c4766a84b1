package main // import "github.com/tonobo/battlesnake-weighted"

// filterBoundary drops every movement leaving the board.
func (t *Turn) filterBoundary() {
	for _, m := range t.Moves.Movements() {
		if t.Board.Outside(m.Target) {
			t.Moves.Eliminate(m.Direction)
		}
	}
}

// filterSelf drops movements into our own body. The tail is allowed unless
// we just ate.
func (t *Turn) filterSelf() {
	for _, m := range t.Moves.Movements() {
		if t.Me.Collides(m.Target) {
			t.Moves.Eliminate(m.Direction)
		}
	}
}

// filterRivals scales down movements near a rival head, down to zero on the
// head itself, and drops movements into a rival body. Factors of several
// rivals multiply.
func (t *Turn) filterRivals() {
	for _, rival := range t.Rivals() {
		for _, m := range t.Moves.Movements() {
			d := m.Target.Distance(rival.Head())
			if d <= t.Tuning.RivalHeadRadius {
				t.Moves.Scale(m.Direction, float64(d)/float64(t.Tuning.RivalHeadRadius))
				continue
			}
			if rival.Collides(m.Target) {
				t.Moves.Eliminate(m.Direction)
			}
		}
	}
}
