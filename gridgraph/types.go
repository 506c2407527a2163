// Package gridgraph defines directions, connector shapes, tiles and the Grid
// type for the gridgraph subpackage of github.com/katalvlaran/pipemaze.
package gridgraph

import "strings"

// Direction is a set of compass directions encoded as bit flags.
// A single flag names one step; a union names the open faces of a Shape.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = 1 << iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West
)

// NoDirection is the empty set.
const NoDirection Direction = 0

// compass lists single directions in canonical N, E, S, W order.
var compass = [4]Direction{North, East, South, West}

// Directions returns the single directions contained in d, in N, E, S, W order.
func (d Direction) Directions() []Direction {
	out := make([]Direction, 0, 2)
	for _, c := range compass {
		if d&c != 0 {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether every direction in other is contained in d.
func (d Direction) Has(other Direction) bool {
	return other != NoDirection && d&other == other
}

// Opposite returns the mirrored direction set (N↔S, E↔W).
func (d Direction) Opposite() Direction {
	var out Direction
	if d&North != 0 {
		out |= South
	}
	if d&South != 0 {
		out |= North
	}
	if d&East != 0 {
		out |= West
	}
	if d&West != 0 {
		out |= East
	}
	return out
}

// Offset returns the (row, col) delta of a single direction.
// Sets with zero or several directions yield (0, 0).
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// String renders the set as compass letters, e.g. "NE".
func (d Direction) String() string {
	if d == NoDirection {
		return "-"
	}
	var sb strings.Builder
	for _, c := range compass {
		if d&c == 0 {
			continue
		}
		switch c {
		case North:
			sb.WriteByte('N')
		case East:
			sb.WriteByte('E')
		case South:
			sb.WriteByte('S')
		case West:
			sb.WriteByte('W')
		}
	}
	return sb.String()
}

// Shape tags the connector geometry of a tile.
type Shape uint8

const (
	// Ground has no connectors.
	Ground Shape = iota
	// Vertical connects north and south: '|'.
	Vertical
	// Horizontal connects east and west: '-'.
	Horizontal
	// BendNE connects north and east: 'L'.
	BendNE
	// BendNW connects north and west: 'J'.
	BendNW
	// BendSW connects south and west: '7'.
	BendSW
	// BendSE connects south and east: 'F'.
	BendSE
	// Start marks the start tile whose real shape is not written down: 'S'.
	Start
)

// PipeShapes lists the six shapes that carry exactly two connectors.
var PipeShapes = [6]Shape{Vertical, Horizontal, BendNE, BendNW, BendSW, BendSE}

// shapeExits maps every shape to its open connector faces.
// Start has none until it is resolved into a pipe shape.
var shapeExits = [...]Direction{
	Ground:     NoDirection,
	Vertical:   North | South,
	Horizontal: East | West,
	BendNE:     North | East,
	BendNW:     North | West,
	BendSW:     South | West,
	BendSE:     South | East,
	Start:      NoDirection,
}

// shapeSymbols maps every shape to its maze character.
var shapeSymbols = [...]rune{
	Ground:     '.',
	Vertical:   '|',
	Horizontal: '-',
	BendNE:     'L',
	BendNW:     'J',
	BendSW:     '7',
	BendSE:     'F',
	Start:      'S',
}

// ParseShape maps a maze character to its Shape.
// ok is false for characters outside | - L J 7 F . S.
func ParseShape(r rune) (s Shape, ok bool) {
	switch r {
	case '.':
		return Ground, true
	case '|':
		return Vertical, true
	case '-':
		return Horizontal, true
	case 'L':
		return BendNE, true
	case 'J':
		return BendNW, true
	case '7':
		return BendSW, true
	case 'F':
		return BendSE, true
	case 'S':
		return Start, true
	}
	return Ground, false
}

// ShapeFromExits returns the pipe shape whose open faces equal exits.
func ShapeFromExits(exits Direction) (Shape, bool) {
	for _, s := range PipeShapes {
		if shapeExits[s] == exits {
			return s, true
		}
	}
	return Ground, false
}

// Exits returns the open connector faces of s.
func (s Shape) Exits() Direction {
	if int(s) >= len(shapeExits) {
		return NoDirection
	}
	return shapeExits[s]
}

// Opens reports whether s has an open face toward d.
func (s Shape) Opens(d Direction) bool {
	return s.Exits().Has(d)
}

// IsPipe reports whether s is one of the six two-connector shapes.
func (s Shape) IsPipe() bool {
	return s >= Vertical && s <= BendSE
}

// Symbol returns the maze character for s.
func (s Shape) Symbol() rune {
	if int(s) >= len(shapeSymbols) {
		return '?'
	}
	return shapeSymbols[s]
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Ground:
		return "Ground"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case BendNE:
		return "BendNE"
	case BendNW:
		return "BendNW"
	case BendSW:
		return "BendSW"
	case BendSE:
		return "BendSE"
	case Start:
		return "Start"
	}
	return "Shape(?)"
}

// Tile is a single grid cell: its coordinates and connector shape.
type Tile struct {
	Row, Col int   // Zero-based coordinates within the grid
	Shape    Shape // Connector geometry at (Row, Col)
}

// Grid is a rectangular pipe maze. It is immutable once built, except for the
// single start-shape rewrite performed by ResolveStart.
// Width and Height define dimensions; tiles[row][col] holds the parsed tile.
type Grid struct {
	Width, Height int
	tiles         [][]Tile
	startRow      int
	startCol      int
	startResolved bool
}
