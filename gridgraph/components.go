package gridgraph

// Networks finds all groups of pipe tiles joined by mutually open faces.
// Two adjacent tiles belong to the same network only if each opens toward
// the other; ground and an unresolved start tile never join a network.
// Returns a slice of networks; each network is a slice of tile indices
// (row-major) in BFS discovery order. Networks are ordered by their first
// tile in row-major order.
//
// To convert an index back to (row, col), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Networks() [][]int {
	seen := make([]bool, g.Width*g.Height)
	var nets [][]int

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if !g.tiles[row][col].Shape.IsPipe() {
				continue
			}
			i0 := g.Index(row, col)
			if seen[i0] {
				continue
			}
			// BFS to collect network
			queue := []int{i0}
			seen[i0] = true
			var net []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				net = append(net, u)
				ur, uc := g.Coordinate(u)
				t := g.tiles[ur][uc]
				for _, d := range t.Shape.Exits().Directions() {
					if !g.Connected(t, d) {
						continue
					}
					nb, _ := g.Neighbor(t, d)
					vi := g.Index(nb.Row, nb.Col)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			nets = append(nets, net)
		}
	}
	return nets
}
