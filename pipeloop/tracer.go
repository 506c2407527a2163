package pipeloop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

// Trace walks the loop through the resolved start tile of g and returns it in
// walk order, starting with the start tile.
//
// The walk leaves the start through first (NoDirection picks the start's
// first face in N, E, S, W order). At every step the neighbour in the current
// heading must exist and open back; the new heading is that neighbour's other
// face. Arriving back at the start ends the walk.
//
// Returns ErrStartNotResolved if g's start shape was never set,
// ErrInvalidFirstExit if first is not a face of the start, and an error
// matching ErrMalformedInput and ErrBrokenLoop if the walk leaves the grid,
// runs into a tile that does not face back, or revisits a tile.
//
// Time:   O(L), where L is the loop length.
// Memory: O(W·H) for the visited bitmap.
func Trace(g *gridgraph.Grid, first gridgraph.Direction) (Loop, error) {
	if g == nil {
		return Loop{}, ErrNilGrid
	}
	if !g.StartResolved() {
		return Loop{}, ErrStartNotResolved
	}
	start := g.Start()
	exits := start.Shape.Exits()

	heading := first
	if heading == gridgraph.NoDirection {
		heading = exits.Directions()[0]
	}
	if len(heading.Directions()) != 1 || !exits.Has(heading) {
		return Loop{}, fmt.Errorf("%w: %s not in %s", ErrInvalidFirstExit, heading, exits)
	}

	visited := make([]bool, g.Width*g.Height)
	visited[g.Index(start.Row, start.Col)] = true
	tiles := []gridgraph.Tile{start}
	cur := start

	for {
		next, ok := g.Neighbor(cur, heading)
		if !ok {
			return Loop{}, brokenAt(cur, heading, "leaves the grid")
		}
		if !next.Shape.Opens(heading.Opposite()) {
			return Loop{}, brokenAt(cur, heading, fmt.Sprintf("%c does not face back", next.Shape.Symbol()))
		}
		idx := g.Index(next.Row, next.Col)
		if visited[idx] {
			if next.Row == start.Row && next.Col == start.Col {
				break // closed
			}
			return Loop{}, brokenAt(cur, heading, "revisits a tile")
		}
		visited[idx] = true
		tiles = append(tiles, next)

		// Leave through the face we did not come in by.
		heading = next.Shape.Exits() &^ heading.Opposite()
		cur = next
	}

	return Loop{tiles: tiles, members: visited, width: g.Width}, nil
}

// brokenAt builds the ErrBrokenLoop error for a failed step from t toward d.
func brokenAt(t gridgraph.Tile, d gridgraph.Direction, why string) error {
	return fmt.Errorf("%w: %w: step %s from (%d,%d) %s",
		ErrMalformedInput, ErrBrokenLoop, d, t.Row, t.Col, why)
}
