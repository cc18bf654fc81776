package maze

import "math/rand"

// wallEdge is a potential passage between two adjacent cells.
type wallEdge struct {
	a Cell
	b Cell
}

// buildEdgeList enumerates every interior wall exactly once by pairing
// each cell with its east and south neighbors. The list has
// 2*w*h - w - h entries.
func buildEdgeList(g *WallGrid) []wallEdge {
	edges := make([]wallEdge, 0, 2*g.Width*g.Height-g.Width-g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < g.Width-1 {
				edges = append(edges, wallEdge{a: Cell{X: x, Y: y}, b: Cell{X: x + 1, Y: y}})
			}
			if y < g.Height-1 {
				edges = append(edges, wallEdge{a: Cell{X: x, Y: y}, b: Cell{X: x, Y: y + 1}})
			}
		}
	}
	return edges
}

// carveKruskal opens walls in a random edge order, skipping any edge
// whose endpoints are already connected. Exactly w*h - 1 unions occur,
// yielding a spanning tree. The Fisher-Yates shuffle iterates from the
// last index down, swapping with a random earlier-or-equal index; the
// exact scheme is part of the seed-reproducibility contract.
func carveKruskal(g *WallGrid, rng *rand.Rand) {
	edges := buildEdgeList(g)
	for i := len(edges) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}

	sets := newDisjointSet(g.Width * g.Height)
	for _, e := range edges {
		rootA := sets.find(e.a.Y*g.Width + e.a.X)
		rootB := sets.find(e.b.Y*g.Width + e.b.X)
		if rootA == rootB {
			continue
		}
		sets.union(rootA, rootB)
		_ = g.RemoveWallBetween(e.a, e.b)
	}
}

// disjointSet is a union-find arena keyed by cell id (y*width + x),
// with union by rank and path compression.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(size int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, size),
		rank:   make([]int, size),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// find returns the root of x's set, halving the path along the way.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the sets rooted at a and b. Both arguments must be
// roots, as returned by find.
func (d *disjointSet) union(a, b int) {
	if d.rank[a] < d.rank[b] {
		a, b = b, a
	}
	d.parent[b] = a
	if d.rank[a] == d.rank[b] {
		d.rank[a]++
	}
}
