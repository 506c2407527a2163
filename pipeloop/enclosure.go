package pipeloop

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

// crosses reports whether loop tile s, followed in scan order by next, counts
// as one crossing of a horizontal ray. hasNext is false for the last loop
// tile of the row.
//
//   - Vertical always crosses.
//   - BendNE then BendSW (L…7) and BendSE then BendNW (F…J) cross once.
//   - Every other bend pairing touches the ray and turns back.
func crosses(s, next gridgraph.Shape, hasNext bool) bool {
	switch s {
	case gridgraph.Vertical:
		return true
	case gridgraph.BendNE:
		return hasNext && next == gridgraph.BendSW
	case gridgraph.BendSE:
		return hasNext && next == gridgraph.BendNW
	}
	return false
}

// scanRow counts the tiles of row r that lie strictly inside loop, calling
// emit (if non-nil) with the column of each one in decreasing order.
//
// The row is walked right to left so the crossing count of the loop tiles to
// the right of the current column is always at hand: a loop tile adds its own
// crossing (paired with the loop tile scanned just before it, i.e. its right
// neighbour in scan order) and a tile off the loop is inside iff that count
// is odd. Horizontal pipes run along the ray and are skipped entirely.
//
// Time: O(W).
func scanRow(g *gridgraph.Grid, loop Loop, r int, emit func(col int)) int {
	var (
		crossings int
		next      gridgraph.Shape
		hasNext   bool
		inside    int
	)
	for c := g.Width - 1; c >= 0; c-- {
		t, _ := g.Tile(r, c)
		if loop.Contains(r, c) {
			if t.Shape == gridgraph.Horizontal {
				continue
			}
			if crosses(t.Shape, next, hasNext) {
				crossings++
			}
			next, hasNext = t.Shape, true
			continue
		}
		if crossings%2 == 1 {
			inside++
			if emit != nil {
				emit(c)
			}
		}
	}
	return inside
}

// countScanline sums scanRow over every row. With parallelism > 1 rows are
// fanned out over an errgroup; each goroutine writes only its own slot.
func countScanline(g *gridgraph.Grid, loop Loop, parallelism int) int {
	perRow := make([]int, g.Height)
	if parallelism <= 1 {
		for r := range perRow {
			perRow[r] = scanRow(g, loop, r, nil)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(parallelism)
		for r := range perRow {
			eg.Go(func() error {
				perRow[r] = scanRow(g, loop, r, nil)
				return nil
			})
		}
		_ = eg.Wait() // row scans never fail
	}

	total := 0
	for _, n := range perRow {
		total += n
	}
	return total
}

// enclosedTiles lists the interior tiles in row-major order.
func enclosedTiles(g *gridgraph.Grid, loop Loop) []gridgraph.Tile {
	var out []gridgraph.Tile
	for r := 0; r < g.Height; r++ {
		var cols []int
		scanRow(g, loop, r, func(c int) { cols = append(cols, c) })
		for i := len(cols) - 1; i >= 0; i-- {
			t, _ := g.Tile(r, cols[i])
			out = append(out, t)
		}
	}
	return out
}
