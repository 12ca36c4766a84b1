package main // import "github.com/tonobo/battlesnake-weighted"

// Tuning holds the constants of the move weighting.
type Tuning struct {
	// FoodHealthLimit is the health at or below which we go for food.
	FoodHealthLimit int
	// GreedyFactor boosts the first step towards food and sets the share the
	// other movements keep of it.
	GreedyFactor    float64
	SpaceBonusCap   float64
	RivalHeadRadius int
}

func DefaultTuning() Tuning {
	return Tuning{
		FoodHealthLimit: 50,
		GreedyFactor:    0.5,
		SpaceBonusCap:   0.2,
		RivalHeadRadius: 2,
	}
}

// Turn is the state of a single move decision. The board is only read.
type Turn struct {
	Board  *Board
	Me     *Snake
	Map    Map
	Moves  *MovementSet
	Tuning Tuning
	Logger Logger
}

// NewTurn prepares a decision for me on b. me is matched against the board
// snakes by id.
func NewTurn(b *Board, me *Snake, tuning Tuning) *Turn {
	t := &Turn{
		Board:  b,
		Me:     me,
		Map:    NewMap(b),
		Tuning: tuning,
		Logger: NopLogger(),
	}
	found := false
	for _, snake := range b.Snakes {
		if snake.ID == me.ID {
			found = true
			break
		}
	}
	if !found {
		t.Map.Mark(me)
	}
	return t
}

// Rivals are all snakes on the board except me.
func (t *Turn) Rivals() []*Snake {
	rivals := make([]*Snake, 0, len(t.Board.Snakes))
	for _, snake := range t.Board.Snakes {
		if snake.ID == t.Me.ID {
			continue
		}
		rivals = append(rivals, snake)
	}
	return rivals
}

// Weigh builds the movement set and runs every filter and evaluation on it.
func (t *Turn) Weigh() *MovementSet {
	t.Moves = NewMovementSet(t.Me.Head())
	t.filterBoundary()
	t.filterSelf()
	t.filterRivals()
	t.evaluateSpace()
	t.seekFood()
	return t.Moves
}

// Move returns the chosen direction. If every movement was eliminated it
// falls back to Up, which is not guaranteed to be safe.
func (t *Turn) Move(r Rand) Direction {
	moves := t.Weigh()
	d, ok := moves.Pick(r)
	if !ok {
		t.Logger.Warn("no safe move, falling back", "direction", Up)
		return Up
	}
	t.Logger.Debug("weighted", "moves", moves, "direction", d)
	return d
}
