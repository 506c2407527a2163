// Package gridgraph provides utilities to treat a rectangular pipe maze as a
// graph of connector tiles. It supports:
//
//   - Parsing the | - L J 7 F . S symbol set into typed Tiles
//   - Neighbour lookups in the four compass directions
//   - A one-shot rewrite of the start tile into its inferred pipe shape
//   - Identification of pipe networks joined by mutually open faces
//
// Tiles whose shape has no open face toward a neighbour are not connected to it.
package gridgraph

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from maze text. Leading and trailing whitespace is
// trimmed; rows are separated by "\n" (a trailing "\r" is tolerated).
// See NewGrid for the validation rules.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, ErrEmptyGrid)
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return NewGrid(lines)
}

// NewGrid constructs a Grid from non-empty rows of equal length.
// Returns an error matching ErrMalformedInput together with ErrEmptyGrid,
// ErrNonRectangular, ErrNoStart or ErrMultipleStart for structural problems,
// and ErrUnsupportedSymbol for characters outside the symbol set.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, ErrEmptyGrid)
	}
	h := len(rows)
	w := len([]rune(rows[0]))
	tiles := make([][]Tile, h)
	startRow, startCol, starts := -1, -1, 0

	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: %w: row %d has %d columns, want %d",
				ErrMalformedInput, ErrNonRectangular, row, len(runes), w)
		}
		tiles[row] = make([]Tile, w)
		for col, r := range runes {
			shape, ok := ParseShape(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrUnsupportedSymbol, r, row, col)
			}
			if shape == Start {
				starts++
				startRow, startCol = row, col
			}
			tiles[row][col] = Tile{Row: row, Col: col, Shape: shape}
		}
	}
	switch {
	case starts == 0:
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, ErrNoStart)
	case starts > 1:
		return nil, fmt.Errorf("%w: %w: found %d", ErrMalformedInput, ErrMultipleStart, starts)
	}

	return &Grid{
		Width:    w,
		Height:   h,
		tiles:    tiles,
		startRow: startRow,
		startCol: startCol,
	}, nil
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Tile returns the tile at (row, col); ok is false outside the grid.
// Complexity: O(1).
func (g *Grid) Tile(row, col int) (t Tile, ok bool) {
	if !g.InBounds(row, col) {
		return Tile{}, false
	}
	return g.tiles[row][col], true
}

// Row returns a copy of row r, or nil if r is out of range.
// Complexity: O(W).
func (g *Grid) Row(r int) []Tile {
	if r < 0 || r >= g.Height {
		return nil
	}
	out := make([]Tile, g.Width)
	copy(out, g.tiles[r])
	return out
}

// Start returns the start tile. Before ResolveStart its Shape is Start,
// afterwards it carries the resolved pipe shape.
// Complexity: O(1).
func (g *Grid) Start() Tile {
	return g.tiles[g.startRow][g.startCol]
}

// StartResolved reports whether ResolveStart has been applied.
func (g *Grid) StartResolved() bool {
	return g.startResolved
}

// ResolveStart rewrites the start tile's shape. It may be called once, with
// one of the six pipe shapes.
// Complexity: O(1).
func (g *Grid) ResolveStart(shape Shape) error {
	if g.startResolved {
		return ErrStartResolved
	}
	if !shape.IsPipe() {
		return fmt.Errorf("%w: got %s", ErrInvalidStartShape, shape)
	}
	g.tiles[g.startRow][g.startCol].Shape = shape
	g.startResolved = true

	return nil
}

// Neighbor returns the tile one step from t in the single direction d.
// ok is false when the step leaves the grid or d is not a single direction.
// Complexity: O(1).
func (g *Grid) Neighbor(t Tile, d Direction) (Tile, bool) {
	dr, dc := d.Offset()
	if dr == 0 && dc == 0 {
		return Tile{}, false
	}
	return g.Tile(t.Row+dr, t.Col+dc)
}

// Connected reports whether t has an open face toward d and the neighbour in
// that direction has an open face pointing back.
// Complexity: O(1).
func (g *Grid) Connected(t Tile, d Direction) bool {
	if !t.Shape.Opens(d) {
		return false
	}
	nb, ok := g.Neighbor(t, d)
	return ok && nb.Shape.Opens(d.Opposite())
}

// Index maps (row, col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Width, idx % g.Width
}

// String renders the grid back into maze text, rows joined by "\n".
// A resolved start tile is rendered with its pipe symbol.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r, row := range g.tiles {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(t.Shape.Symbol())
		}
	}
	return sb.String()
}
