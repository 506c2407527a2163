package pipeloop_test

import "strings"

// Mazes shared by the pipeloop tests.
const (
	squareMaze = `
.....
.S-7.
.|.|.
.L-J.
.....`

	complexMaze = `
..F7.
.FJ|.
SJ.L7
|F--J
LJ...`

	squareClutterMaze = `
-L|F7
7S-7|
L|7||
-L-J|
L|-JF`

	complexClutterMaze = `
7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ`

	squeezedMaze = `
...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`

	largeMaze = `
.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`

	junkMaze = `
FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`
)

// ringMaze returns a w×h rectangular loop with the start in the top-left
// corner and ground inside. Loop length is 2(w+h)−4 and (w−2)(h−2) tiles
// are enclosed.
func ringMaze(w, h int) string {
	var sb strings.Builder
	sb.WriteString("S" + strings.Repeat("-", w-2) + "7\n")
	for r := 1; r < h-1; r++ {
		sb.WriteString("|" + strings.Repeat(".", w-2) + "|\n")
	}
	sb.WriteString("L" + strings.Repeat("-", w-2) + "J")
	return sb.String()
}
