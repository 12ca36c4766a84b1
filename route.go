package main // import "github.com/tonobo/battlesnake-weighted"

import "container/heap"

// Route is a shortest path between two cells, Steps includes both ends.
type Route struct {
	From  Point
	To    Point
	Steps []Point
}

// Unresolved reports whether no usable path was found.
func (r *Route) Unresolved() bool {
	return len(r.Steps) < 2
}

// StepCount is the number of moves along the route.
func (r *Route) StepCount() int {
	if len(r.Steps) == 0 {
		return 0
	}
	return len(r.Steps) - 1
}

// First is the direction of the first move along the route.
func (r *Route) First() (Direction, bool) {
	if r.Unresolved() {
		return Up, false
	}
	return DirectionTo(r.Steps[0], r.Steps[1])
}

// NearestFood returns the food closest to from. On equal distance the
// earlier entry wins.
func NearestFood(from Point, food []Point) (Point, bool) {
	if len(food) == 0 {
		return Point{}, false
	}
	best := food[0]
	for _, f := range food[1:] {
		if f.Distance(from) < best.Distance(from) {
			best = f
		}
	}
	return best, true
}

type routeNode struct {
	p      Point
	g, f   int
	seq    int
	parent *routeNode
	index  int // position in the open list, -1 once popped
}

// openList is a min heap on f. Equal f values pop in insertion order, so the
// same board always yields the same route.
type openList []*routeNode

func (o openList) Len() int { return len(o) }
func (o openList) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o openList) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openList) Push(x interface{}) {
	n := x.(*routeNode)
	n.index = len(*o)
	*o = append(*o, n)
}
func (o *openList) Pop() interface{} {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*o = old[:len(old)-1]
	return n
}

// FindRoute runs A* from one cell to another. Other snakes are walls, our
// own body is not: it moves out of the way while we follow the route.
// Steps are uniform cost and the manhattan heuristic is consistent, so a
// popped cell is final.
func (t *Turn) FindRoute(from, to Point) *Route {
	r := &Route{From: from, To: to}
	if t.Board.Outside(from) || t.Board.Outside(to) {
		return r
	}
	if from == to {
		r.Steps = []Point{from}
		return r
	}

	seq := 0
	start := &routeNode{p: from, f: from.Distance(to)}
	nodes := map[Point]*routeNode{from: start}
	closed := map[Point]bool{}
	open := &openList{}
	heap.Push(open, start)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*routeNode)
		if cur.p == to {
			for n := cur; n != nil; n = n.parent {
				r.Steps = append(r.Steps, n.p)
			}
			for i, j := 0, len(r.Steps)-1; i < j; i, j = i+1, j-1 {
				r.Steps[i], r.Steps[j] = r.Steps[j], r.Steps[i]
			}
			return r
		}
		closed[cur.p] = true
		for _, next := range cur.p.Neighbours() {
			if closed[next] || t.Map.BlockedFor(t.Me, next) {
				continue
			}
			g := cur.g + 1
			n, seen := nodes[next]
			switch {
			case !seen:
				seq++
				n = &routeNode{p: next, g: g, f: g + next.Distance(to), seq: seq, parent: cur}
				nodes[next] = n
				heap.Push(open, n)
			case g < n.g:
				n.g, n.f, n.parent = g, g+next.Distance(to), cur
				heap.Fix(open, n.index)
			}
		}
	}
	return r
}

// seekFood pulls the weights towards the first step of the shortest route to
// the nearest food when health runs low.
func (t *Turn) seekFood() {
	if t.Me.Health > t.Tuning.FoodHealthLimit {
		return
	}
	food, ok := NearestFood(t.Me.Head(), t.Board.Food)
	if !ok {
		return
	}
	route := t.FindRoute(t.Me.Head(), food)
	first, ok := route.First()
	if !ok {
		t.Logger.Debug("no food route", "food", food)
		return
	}
	// An eliminated first step keeps weight 0, which then zeroes the others.
	greedy := t.Tuning.GreedyFactor
	t.Moves.Scale(first, 1+greedy)
	boosted := t.Moves.Weight(first)
	for _, m := range t.Moves.Movements() {
		if m.Direction != first {
			t.Moves.SetWeight(m.Direction, boosted*greedy)
		}
	}
	t.Logger.Debug("food route", "food", food, "steps", route.StepCount(), "direction", first)
}
