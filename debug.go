package main // import "github.com/tonobo/battlesnake-weighted"

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// PrintGrid draws the board top row first. Our snake is M/m, rivals use a
// letter per snake, upper case for the head. F is food. Below the grid the
// surviving movements are listed by weight.
func PrintGrid(w io.Writer, t *Turn) {
	letters := map[string]string{t.Me.ID: "m"}
	for i, rival := range t.Rivals() {
		letters[rival.ID] = string(rune('a' + i%26))
	}
	food := make(map[Point]bool, len(t.Board.Food))
	for _, f := range t.Board.Food {
		food[f] = true
	}
	for y := t.Board.Height - 1; y >= 0; y-- {
		for x := 0; x < t.Board.Width; x++ {
			p := Point{X: x, Y: y}
			switch s := t.Map.SnakeOn(p); {
			case s != nil && s.Head() == p:
				fmt.Fprint(w, strings.ToUpper(letters[s.ID]))
			case s != nil:
				fmt.Fprint(w, letters[s.ID])
			case food[p]:
				fmt.Fprint(w, "F")
			default:
				fmt.Fprint(w, "-")
			}
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "\n")
	if t.Moves == nil {
		return
	}
	moves := t.Moves.Movements()
	sort.Stable(sort.Reverse(moves))
	for _, m := range moves {
		fmt.Fprintf(w, "%-5s x: %d, y: %d, weight: %0.3f\n", m.Direction, m.Target.X, m.Target.Y, m.Weight)
	}
}

// Archive appends raw requests as json lines, one file per game.
type Archive struct {
	dir string
	mu  sync.Mutex
}

// NewArchive returns an archive writing to dir. An empty dir disables it.
func NewArchive(dir string) *Archive {
	return &Archive{dir: dir}
}

func (a *Archive) Path(gameID string) string {
	return filepath.Join(a.dir, fmt.Sprintf("snake-%s.log", filepath.Base(gameID)))
}

func (a *Archive) Append(j *Request) error {
	if a == nil || a.dir == "" {
		return nil
	}
	body, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	f, err := os.OpenFile(a.Path(j.GameID()), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\n", body); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	return nil
}
