package maze

import "math/rand"

// frontierEntry is a discovered cell together with the visited cell it
// was discovered from. The start cell has no origin.
type frontierEntry struct {
	cell    Cell
	from    Cell
	hasFrom bool
}

// carvePrim grows a spanning tree by frontier expansion. Entries are
// popped from the frontier at a uniformly random index rather than
// FIFO/LIFO; that uniform pop is what gives Prim's its characteristic
// short, branchy passages. Cells are marked visited when pushed, never
// on pop, so no cell is queued twice.
func carvePrim(g *WallGrid, rng *rand.Rand) {
	visited := make([][]bool, g.Height)
	for y := range visited {
		visited[y] = make([]bool, g.Width)
	}

	start := Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
	visited[start.Y][start.X] = true
	frontier := []frontierEntry{{cell: start}}

	for len(frontier) > 0 {
		idx := rng.Intn(len(frontier))
		entry := frontier[idx]
		frontier[idx] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if entry.hasFrom {
			_ = g.RemoveWallBetween(entry.from, entry.cell)
		}

		for _, neighbor := range g.Neighbors(entry.cell) {
			if visited[neighbor.Y][neighbor.X] {
				continue
			}
			visited[neighbor.Y][neighbor.X] = true
			frontier = append(frontier, frontierEntry{cell: neighbor, from: entry.cell, hasFrom: true})
		}
	}
}
