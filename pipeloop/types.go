// Package pipeloop defines the Loop and Analyzer types, enclosure methods and
// the functional options for the pipeloop subpackage of
// github.com/katalvlaran/pipemaze.
package pipeloop

import (
	"log/slog"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

// Method selects how enclosed tiles are counted.
type Method int

const (
	// ScanlineParity counts crossings to the right of each tile, row by row.
	ScanlineParity Method = iota
	// ShoelacePick derives the interior count from the loop polygon's area.
	ShoelacePick
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case ScanlineParity:
		return "scanline-parity"
	case ShoelacePick:
		return "shoelace-pick"
	}
	return "unknown"
}

// Option configures optional behavior of an Analyzer.
// Use with New(grid, opts...) or Parse(text, opts...).
type Option func(*Options)

// Options holds configurable parameters for loop analysis.
type Options struct {
	// Method selects the enclosure counting method. Default ScanlineParity.
	Method Method

	// Parallelism bounds how many rows ScanlineParity counts concurrently.
	// 1 (default) counts rows serially on the calling goroutine.
	Parallelism int

	// FirstExit picks which face of the resolved start the walk leaves
	// through. NoDirection (default) takes the first face in N, E, S, W order.
	FirstExit gridgraph.Direction

	// Logger receives debug records. Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns an Options struct with:
//   - ScanlineParity enclosure counting
//   - Serial row processing (Parallelism = 1)
//   - Automatic first exit
//   - A logger that discards everything
func DefaultOptions() Options {
	return Options{
		Method:      ScanlineParity,
		Parallelism: 1,
		FirstExit:   gridgraph.NoDirection,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithMethod returns an Option that selects the enclosure counting method.
// Panics on an unknown method.
func WithMethod(m Method) Option {
	if m != ScanlineParity && m != ShoelacePick {
		panic("pipeloop: WithMethod(unknown method)")
	}
	return func(o *Options) {
		o.Method = m
	}
}

// WithParallelism returns an Option that counts up to n rows concurrently.
// Panics when n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("pipeloop: WithParallelism(n < 1)")
	}
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithFirstExit returns an Option that makes the walk leave the start tile
// through d. d must be a single compass direction; New reports
// ErrInvalidFirstExit if the resolved start has no face toward it.
func WithFirstExit(d gridgraph.Direction) Option {
	if len(d.Directions()) != 1 {
		panic("pipeloop: WithFirstExit(not a single direction)")
	}
	return func(o *Options) {
		o.FirstExit = d
	}
}

// WithLogger returns an Option that installs l for debug records.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeloop: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// Loop is the ordered cycle of tiles traced from the start. The first tile is
// the start (with its resolved shape); the last tile connects back to it.
// Membership lookups are O(1) through a bitmap sized to the grid.
type Loop struct {
	tiles   []gridgraph.Tile
	members []bool
	width   int
}

// Len returns the number of tiles in the loop.
func (l Loop) Len() int {
	return len(l.tiles)
}

// Tiles returns a copy of the loop's tiles in walk order.
func (l Loop) Tiles() []gridgraph.Tile {
	out := make([]gridgraph.Tile, len(l.tiles))
	copy(out, l.tiles)
	return out
}

// Contains reports whether (row, col) lies on the loop.
func (l Loop) Contains(row, col int) bool {
	if row < 0 || col < 0 || col >= l.width {
		return false
	}
	idx := row*l.width + col
	return idx < len(l.members) && l.members[idx]
}

// FarthestSteps returns the number of steps along the loop from the start to
// the tile opposite it. The loop of a grid is always of even length.
func (l Loop) FarthestSteps() int {
	return len(l.tiles) / 2
}

// Stats summarizes an analysis.
type Stats struct {
	LoopLength      int    // tiles on the loop
	FarthestSteps   int    // LoopLength / 2
	Enclosed        int    // tiles strictly inside the loop
	Method          string // enclosure method used for Enclosed
	ClutterNetworks int    // pipe networks other than the loop
	ClutterTiles    int    // pipe tiles not on the loop
}

// Analyzer holds a grid whose start has been resolved together with its
// traced loop. It is read-only and safe for concurrent use once built.
type Analyzer struct {
	grid *gridgraph.Grid
	loop Loop
	opts Options
}
