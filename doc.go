// Package pipemaze is an in-memory solver for pipe-loop mazes: rectangular
// grids of connector tiles that hide exactly one closed loop among unrelated
// pipe clutter.
//
// What is in the box?
//
//	• gridgraph/ — the Grid: parse | - L J 7 F . S into typed tiles,
//	               compass directions, neighbour lookups, pipe networks
//	• pipeloop/  — infer the start tile's hidden shape, trace the loop,
//	               measure the farthest point and count enclosed tiles
//
// Typical flow:
//
//	a, err := pipeloop.Parse(text)
//	if err != nil {
//		// errors.Is(err, pipeloop.ErrMalformedInput) / ErrUnsupportedSymbol
//	}
//	steps := a.FarthestStepsFromStart()
//	inside := a.CountEnclosedTiles()
//
// Quick ASCII example:
//
//	.....
//	.S-7.      S resolves to F; the loop has 8 tiles,
//	.|.|.      the farthest tile is 4 steps away,
//	.L-J.      and one tile is enclosed.
//	.....
package pipemaze
