package pipeloop

// countShoelacePick counts interior lattice points of the loop polygon.
//
// The loop's tile centres are the polygon's vertices in walk order. The
// shoelace formula gives twice the area 2A; every loop tile is a boundary
// lattice point, so B = L, and Pick's theorem A = I + B/2 − 1 yields
// I = (2A − B)/2 + 1.
//
// Time: O(L). Memory: O(1).
func countShoelacePick(loop Loop) int {
	n := len(loop.tiles)
	if n < 4 {
		return 0
	}
	twiceArea := 0
	for i, t := range loop.tiles {
		u := loop.tiles[(i+1)%n]
		twiceArea += t.Col*u.Row - u.Col*t.Row
	}
	if twiceArea < 0 {
		twiceArea = -twiceArea
	}
	return (twiceArea-n)/2 + 1
}
