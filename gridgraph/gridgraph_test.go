package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

const squareLoop = `
.....
.S-7.
.|.|.
.L-J.
.....
`

//----------------------------------------------------------------------------//
// Parse / NewGrid Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty, ragged, start-less,
// multi-start and alien-symbol inputs with the right sentinels.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		err       error
		malformed bool
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid, true},
		{"Whitespace", " \n\t\n ", gridgraph.ErrEmptyGrid, true},
		{"NonRectangular", "S-7\n|.\nL-J", gridgraph.ErrNonRectangular, true},
		{"NoStart", "F-7\n|.|\nL-J", gridgraph.ErrNoStart, true},
		{"MultipleStart", "S-7\n|.|\nL-S", gridgraph.ErrMultipleStart, true},
		{"UnsupportedSymbol", "S-7\n|x|\nL-J", gridgraph.ErrUnsupportedSymbol, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Parse(tc.text)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.err), "Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			assert.Equal(t, tc.malformed, errors.Is(err, gridgraph.ErrMalformedInput))
		})
	}
}

// TestNewGrid_EmptyRows checks the empty cases of the slice constructor.
func TestNewGrid_EmptyRows(t *testing.T) {
	_, err := gridgraph.NewGrid(nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.NewGrid([]string{""})
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestParse_Dimensions checks trimming, CRLF tolerance and tile placement.
func TestParse_Dimensions(t *testing.T) {
	g, err := gridgraph.Parse("\r\n.S-7.\r\n.L-J.\r\n")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 2, g.Height)

	tile, ok := g.Tile(0, 3)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Tile{Row: 0, Col: 3, Shape: gridgraph.BendSW}, tile)

	start := g.Start()
	assert.Equal(t, 0, start.Row)
	assert.Equal(t, 1, start.Col)
	assert.Equal(t, gridgraph.Start, start.Shape)
	assert.False(t, g.StartResolved())
}

// TestInBounds checks InBounds and Tile on a 5×5 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.Parse(squareLoop)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {4, 4}, {2, 3}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {5, 0}, {0, 5}, {2, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
		_, ok := g.Tile(rc[0], rc[1])
		assert.False(t, ok)
	}
}

// TestRow_IsCopy ensures callers cannot mutate the grid through Row.
func TestRow_IsCopy(t *testing.T) {
	g, err := gridgraph.Parse(squareLoop)
	require.NoError(t, err)

	row := g.Row(1)
	require.Len(t, row, 5)
	row[2].Shape = gridgraph.Ground

	tile, _ := g.Tile(1, 2)
	assert.Equal(t, gridgraph.Horizontal, tile.Shape)
	assert.Nil(t, g.Row(-1))
	assert.Nil(t, g.Row(5))
}

//----------------------------------------------------------------------------//
// Neighbor / Connected Tests
//----------------------------------------------------------------------------//

// TestNeighbor walks one step in every direction and off the edge.
func TestNeighbor(t *testing.T) {
	g, err := gridgraph.Parse(squareLoop)
	require.NoError(t, err)
	start := g.Start()

	cases := []struct {
		dir  gridgraph.Direction
		want gridgraph.Shape
	}{
		{gridgraph.North, gridgraph.Ground},
		{gridgraph.East, gridgraph.Horizontal},
		{gridgraph.South, gridgraph.Vertical},
		{gridgraph.West, gridgraph.Ground},
	}
	for _, tc := range cases {
		nb, ok := g.Neighbor(start, tc.dir)
		require.True(t, ok, tc.dir.String())
		assert.Equal(t, tc.want, nb.Shape, tc.dir.String())
	}

	corner, _ := g.Tile(0, 0)
	_, ok := g.Neighbor(corner, gridgraph.North)
	assert.False(t, ok)
	_, ok = g.Neighbor(corner, gridgraph.North|gridgraph.East)
	assert.False(t, ok, "composite directions have no single neighbour")
}

// TestConnected checks mutual face matching around the square loop.
func TestConnected(t *testing.T) {
	g, err := gridgraph.Parse(squareLoop)
	require.NoError(t, err)

	bend, _ := g.Tile(1, 3) // '7'
	assert.True(t, g.Connected(bend, gridgraph.West))
	assert.True(t, g.Connected(bend, gridgraph.South))
	assert.False(t, g.Connected(bend, gridgraph.East))

	pipe, _ := g.Tile(1, 2) // '-' next to the unresolved start
	assert.False(t, g.Connected(pipe, gridgraph.West))
	require.NoError(t, g.ResolveStart(gridgraph.BendSE))
	assert.True(t, g.Connected(pipe, gridgraph.West))
}

//----------------------------------------------------------------------------//
// ResolveStart Tests
//----------------------------------------------------------------------------//

// TestResolveStart verifies the one-shot rewrite and its guards.
func TestResolveStart(t *testing.T) {
	g, err := gridgraph.Parse(squareLoop)
	require.NoError(t, err)

	assert.ErrorIs(t, g.ResolveStart(gridgraph.Ground), gridgraph.ErrInvalidStartShape)
	assert.ErrorIs(t, g.ResolveStart(gridgraph.Start), gridgraph.ErrInvalidStartShape)
	assert.False(t, g.StartResolved())

	require.NoError(t, g.ResolveStart(gridgraph.BendSE))
	assert.True(t, g.StartResolved())
	assert.Equal(t, gridgraph.Tile{Row: 1, Col: 1, Shape: gridgraph.BendSE}, g.Start())

	assert.ErrorIs(t, g.ResolveStart(gridgraph.Vertical), gridgraph.ErrStartResolved)
	assert.Equal(t, gridgraph.BendSE, g.Start().Shape)
}

// TestIndexCoordinate round-trips row-major indices.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.Parse("S-7\n|.|\nL-J\n...")
	require.NoError(t, err)
	for idx := 0; idx < g.Width*g.Height; idx++ {
		r, c := g.Coordinate(idx)
		assert.Equal(t, idx, g.Index(r, c))
	}
	r, c := g.Coordinate(7)
	assert.Equal(t, [2]int{2, 1}, [2]int{r, c})
}

// TestString renders the grid back, including a resolved start.
func TestString(t *testing.T) {
	g, err := gridgraph.Parse(squareLoop)
	require.NoError(t, err)
	assert.Equal(t, ".....\n.S-7.\n.|.|.\n.L-J.\n.....", g.String())

	require.NoError(t, g.ResolveStart(gridgraph.BendSE))
	assert.Equal(t, ".....\n.F-7.\n.|.|.\n.L-J.\n.....", g.String())
}
