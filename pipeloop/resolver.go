package pipeloop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

// ResolveStartShape infers the pipe shape hidden under the start marker.
//
// A candidate shape is accepted only if, for both of its faces, the
// neighbour in that direction exists and opens back toward the start.
// Candidates are tried in gridgraph.PipeShapes order; exactly one must fit.
//
// Returns an error matching ErrMalformedInput and ErrStartUnresolved when no
// candidate fits, or ErrAmbiguousStart when several do.
// Complexity: O(1).
func ResolveStartShape(g *gridgraph.Grid) (gridgraph.Shape, error) {
	if g == nil {
		return gridgraph.Ground, ErrNilGrid
	}
	start := g.Start()

	// faces collects the directions whose neighbour faces back into the start.
	var faces gridgraph.Direction
	for _, d := range (gridgraph.North | gridgraph.East | gridgraph.South | gridgraph.West).Directions() {
		nb, ok := g.Neighbor(start, d)
		if ok && nb.Shape.Opens(d.Opposite()) {
			faces |= d
		}
	}

	var matches []gridgraph.Shape
	for _, s := range gridgraph.PipeShapes {
		if faces.Has(s.Exits()) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return gridgraph.Ground, fmt.Errorf("%w: %w at (%d,%d): facing neighbours %s",
			ErrMalformedInput, ErrStartUnresolved, start.Row, start.Col, faces)
	case 1:
		return matches[0], nil
	default:
		return gridgraph.Ground, fmt.Errorf("%w: %w at (%d,%d): candidates %v",
			ErrMalformedInput, ErrAmbiguousStart, start.Row, start.Col, matches)
	}
}
