package pipeloop

import (
	"errors"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

var (
	// ErrMalformedInput re-exports the umbrella kind so callers of Parse need
	// not import gridgraph to classify failures.
	ErrMalformedInput = gridgraph.ErrMalformedInput
	// ErrUnsupportedSymbol re-exports the alphabet violation kind.
	ErrUnsupportedSymbol = gridgraph.ErrUnsupportedSymbol

	// ErrStartUnresolved indicates no pipe shape fits the start's neighbours.
	ErrStartUnresolved = errors.New("pipeloop: no pipe shape fits the start tile")
	// ErrAmbiguousStart indicates more than one pipe shape fits the start's neighbours.
	ErrAmbiguousStart = errors.New("pipeloop: several pipe shapes fit the start tile")
	// ErrBrokenLoop indicates the walk from the start does not close back on it.
	ErrBrokenLoop = errors.New("pipeloop: loop is broken")

	// ErrNilGrid indicates a nil *gridgraph.Grid was passed in.
	ErrNilGrid = errors.New("pipeloop: grid is nil")
	// ErrStartNotResolved indicates Trace was called before the start shape was set.
	ErrStartNotResolved = errors.New("pipeloop: start tile shape has not been resolved")
	// ErrInvalidFirstExit indicates the requested first exit is not a face of the start.
	ErrInvalidFirstExit = errors.New("pipeloop: first exit is not open on the start tile")
)
