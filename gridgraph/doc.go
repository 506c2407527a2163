// Package gridgraph treats a rectangular pipe maze as a graph of connector
// tiles, enabling neighbour lookups along open pipe faces and discovery of
// connected pipe networks.
//
// What:
//
//   - Grid wraps a rectangular table of Tiles parsed from the symbol set
//     | - L J 7 F . S (vertical, horizontal, four bends, ground, start).
//   - Every Shape carries a fixed set of open connector Directions.
//   - Neighbor resolves the tile one step away in a Direction (out of grid = absent).
//   - Networks partitions pipe tiles into groups joined by mutually open faces.
//
// Why:
//
//   - Loop tracing: walk a pipe cycle from the start tile without guessing.
//   - Enclosure analysis: row-major tile access for scanline algorithms.
//   - Clutter inspection: tell the main loop apart from unrelated pipe fragments.
//
// Complexity:
//
//   - Parse / NewGrid: O(W×H), Memory: O(W×H).
//   - Neighbor, Tile, InBounds: O(1).
//   - Networks: O(W×H×4), Memory: O(W×H).
//
// Start tile:
//
//	Exactly one tile is parsed as Start. Its true shape is implicit; once
//	inferred it is recorded with ResolveStart, exactly once. Start() keeps
//	reporting the start position afterwards.
//
// Errors:
//
//   - ErrMalformedInput: umbrella for every structural problem below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart / ErrMultipleStart: zero or several start markers.
//   - ErrUnsupportedSymbol: a character outside the symbol set.
//   - ErrStartResolved / ErrInvalidStartShape: misuse of ResolveStart.
package gridgraph
