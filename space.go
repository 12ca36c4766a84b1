package main // import "github.com/tonobo/battlesnake-weighted"

import "math"

// FloodFill counts the free cells reachable from start. The start cell is
// always counted, even when a body covers it. The walk stops as soon as more
// than limit cells were visited.
func (m Map) FloodFill(start Point, limit int) int {
	visited := map[Point]struct{}{start: {}}
	queue := []Point{start}
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++
		if count > limit {
			return count
		}
		for _, next := range p.Neighbours() {
			if _, seen := visited[next]; seen {
				continue
			}
			if m.Blocked(next) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return count
}

// SpaceFactor rates an area against the snake length. Pockets smaller than
// the snake are penalised down to -1, larger ones get a bonus of at most
// bonusCap.
func SpaceFactor(area, length int, bonusCap float64) float64 {
	if length <= 0 {
		return 0
	}
	switch {
	case area < length:
		return -float64(length-area) / float64(length)
	case area > length:
		return math.Min(float64(area-length)/float64(length), bonusCap)
	}
	return 0
}

// FloodLimit is the visited count after which the exact area no longer
// changes the factor.
func FloodLimit(length int) int {
	return length + length/2
}

func (t *Turn) evaluateSpace() {
	length := t.Me.Size()
	limit := FloodLimit(length)
	for _, m := range t.Moves.Movements() {
		area := t.Map.FloodFill(m.Target, limit)
		factor := SpaceFactor(area, length, t.Tuning.SpaceBonusCap)
		t.Moves.Scale(m.Direction, 1+factor)
		t.Logger.Debug("space evaluated", "direction", m.Direction, "area", area, "factor", factor)
	}
}
