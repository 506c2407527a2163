package pipeloop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

// Parse builds the grid from maze text and analyzes it. See gridgraph.Parse
// for the input rules and New for the analysis steps.
func Parse(text string, opts ...Option) (*Analyzer, error) {
	g, err := gridgraph.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: Parse: %w", err)
	}
	return New(g, opts...)
}

// New resolves the start tile of g (rewriting it in place, unless it was
// already resolved) and traces the loop through it.
//
// Errors from ResolveStartShape and Trace are returned wrapped with context;
// classify them with errors.Is against ErrMalformedInput, ErrStartUnresolved,
// ErrAmbiguousStart, ErrBrokenLoop or ErrInvalidFirstExit.
//
// Complexity: O(W×H) for the visited bitmap plus O(L) for the walk.
func New(g *gridgraph.Grid, opts ...Option) (*Analyzer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.With("width", g.Width, "height", g.Height)

	if !g.StartResolved() {
		shape, err := ResolveStartShape(g)
		if err != nil {
			return nil, fmt.Errorf("pipeloop: New: %w", err)
		}
		if err = g.ResolveStart(shape); err != nil {
			return nil, fmt.Errorf("pipeloop: New: %w", err)
		}
	}
	start := g.Start()
	log.Debug("start resolved", "row", start.Row, "col", start.Col, "shape", start.Shape.String())

	loop, err := Trace(g, o.FirstExit)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: New: %w", err)
	}
	log.Debug("loop traced", "length", loop.Len(), "farthest", loop.FarthestSteps())

	return &Analyzer{grid: g, loop: loop, opts: o}, nil
}

// Grid returns the analyzed grid, with its start tile resolved.
func (a *Analyzer) Grid() *gridgraph.Grid {
	return a.grid
}

// Loop returns the traced loop.
func (a *Analyzer) Loop() Loop {
	return a.loop
}

// FarthestStepsFromStart returns how many steps along the loop separate the
// start from the tile farthest from it, i.e. half the loop length.
// Complexity: O(1).
func (a *Analyzer) FarthestStepsFromStart() int {
	return a.loop.FarthestSteps()
}

// CountEnclosedTiles returns the number of tiles strictly inside the loop,
// using the configured Method.
// Complexity: O(W×H) for ScanlineParity, O(L) for ShoelacePick.
func (a *Analyzer) CountEnclosedTiles() int {
	var n int
	switch a.opts.Method {
	case ShoelacePick:
		n = countShoelacePick(a.loop)
	default:
		n = countScanline(a.grid, a.loop, a.opts.Parallelism)
	}
	a.opts.Logger.Debug("enclosure counted",
		"method", a.opts.Method.String(),
		"parallelism", a.opts.Parallelism,
		"enclosed", n)
	return n
}

// EnclosedTiles returns the tiles strictly inside the loop in row-major order.
// Complexity: O(W×H).
func (a *Analyzer) EnclosedTiles() []gridgraph.Tile {
	return enclosedTiles(a.grid, a.loop)
}

// Stats gathers the loop measurements together with a census of the pipe
// clutter around the loop.
// Complexity: O(W×H).
func (a *Analyzer) Stats() Stats {
	s := Stats{
		LoopLength:    a.loop.Len(),
		FarthestSteps: a.loop.FarthestSteps(),
		Enclosed:      a.CountEnclosedTiles(),
		Method:        a.opts.Method.String(),
	}
	for _, net := range a.grid.Networks() {
		r, c := a.grid.Coordinate(net[0])
		if a.loop.Contains(r, c) {
			continue
		}
		s.ClutterNetworks++
		s.ClutterTiles += len(net)
	}
	return s
}
