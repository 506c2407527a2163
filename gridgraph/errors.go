package gridgraph

import "errors"

var (
	// ErrMalformedInput is the umbrella kind for structurally invalid mazes.
	// Every structural error returned by this package also matches it via errors.Is.
	ErrMalformedInput = errors.New("gridgraph: malformed input")
	// ErrUnsupportedSymbol indicates a character outside | - L J 7 F . S.
	ErrUnsupportedSymbol = errors.New("gridgraph: unsupported symbol")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoStart indicates the grid has no start marker.
	ErrNoStart = errors.New("gridgraph: no start tile")
	// ErrMultipleStart indicates the grid has more than one start marker.
	ErrMultipleStart = errors.New("gridgraph: more than one start tile")
	// ErrStartResolved indicates ResolveStart was already applied.
	ErrStartResolved = errors.New("gridgraph: start tile already resolved")
	// ErrInvalidStartShape indicates ResolveStart got a shape that is not a pipe.
	ErrInvalidStartShape = errors.New("gridgraph: start shape must be a pipe")
)
