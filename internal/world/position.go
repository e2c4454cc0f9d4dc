package world

import (
	"fmt"
	"math"
)

// Position is a pair of integer coordinates. It doubles as the key of the
// main layer and the decoration layer.
type Position struct {
	X int
	Y int
}

// String formats the position the way event texts expect: "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Distance returns the straight-line (Euclidean) distance between two
// positions. Movement adjacency and weapon/heal range checks all use this
// metric, so diagonal steps (distance sqrt(2)) are not walkable.
func Distance(a, b Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
