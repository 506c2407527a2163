// Package pipeloop finds the single closed pipe loop of a maze and measures it.
//
// What:
//
//   - ResolveStartShape infers the start tile's hidden pipe shape from the
//     four neighbours that would have to face back into it.
//   - Trace walks the loop from the start, one connector at a time, and
//     returns the ordered cycle of tiles.
//   - Analyzer answers the two loop questions: how far (in steps along the
//     loop) the farthest tile is from the start, and how many tiles the loop
//     encloses.
//
// Enclosure methods:
//
//   - ScanlineParity (default): per row, a tile off the loop is inside iff an
//     odd number of loop crossings lie to its right. Horizontal pipes never
//     cross; Vertical pipes always do; the bend pairs L…7 and F…J cross once,
//     while L…J and F…7 touch the ray and turn back.
//   - ShoelacePick: twice the polygon area via the shoelace formula over tile
//     centres, then Pick's theorem I = (2A − B)/2 + 1. Exact integer arithmetic.
//
// Complexity:
//
//   - ResolveStartShape: O(1).
//   - Trace:             O(L) time, O(W×H) memory for the visited bitmap.
//   - ScanlineParity:    O(W×H), optionally fanned out per row.
//   - ShoelacePick:      O(L).
//
// Options:
//
//   - WithMethod: choose the enclosure method.
//   - WithParallelism: count rows on up to n goroutines (errgroup).
//   - WithFirstExit: which of the start's two faces to leave through first.
//   - WithLogger: structured debug records via log/slog.
//
// Errors:
//
//   - ErrMalformedInput (alias of gridgraph.ErrMalformedInput) wraps
//     ErrStartUnresolved, ErrAmbiguousStart and ErrBrokenLoop.
//   - ErrNilGrid, ErrStartNotResolved, ErrInvalidFirstExit: API misuse.
package pipeloop
