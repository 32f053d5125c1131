package nsga2

import "github.com/cpmech/gosl/chk"

// DominationGraph is a directed graph over population indices with an edge
// i -> j iff individual i strictly Pareto-dominates individual j. It
// maintains an in-degree count per node and peels layered fronts in a single
// destructive pass (PopAndGetFronts); reuse after peeling is a programmer
// error. Nodes and edges are never removed outside of the peel itself.
type DominationGraph struct {
	nodes     []int
	out       map[int][]int
	inDegree  map[int]int
	destroyed bool
}

// NewDominationGraph allocates an empty domination graph.
func NewDominationGraph() *DominationGraph {
	return &DominationGraph{
		out:      make(map[int][]int),
		inDegree: make(map[int]int),
	}
}

// AddNode registers node i. Adding the same node twice is a no-op.
func (g *DominationGraph) AddNode(i int) {
	g.checkAlive()
	if _, ok := g.inDegree[i]; ok {
		return
	}
	g.nodes = append(g.nodes, i)
	g.out[i] = nil
	g.inDegree[i] = 0
}

// AddEdge adds a directed edge from -> to, meaning individual `from`
// strictly dominates individual `to`. Adding a duplicate edge is a no-op.
// Adding an edge referencing a node not yet present is a fatal error.
func (g *DominationGraph) AddEdge(from, to int) {
	g.checkAlive()
	if _, ok := g.inDegree[from]; !ok {
		chk.Panic("domination graph: add_edge from absent node %d", from)
	}
	if _, ok := g.inDegree[to]; !ok {
		chk.Panic("domination graph: add_edge to absent node %d", to)
	}
	for _, j := range g.out[from] {
		if j == to {
			return
		}
	}
	g.out[from] = append(g.out[from], to)
	g.inDegree[to]++
}

// PopAndGetFronts destructively peels the graph into an ordered sequence of
// fronts, outer rank first. After this call the graph transitions to a
// destructed state; any further call on it panics.
//
// Algorithm (Kahn-style layered BFS): initialize a frontier
// with every in-degree-zero node; repeatedly drain the current frontier into
// a new front, then decrement the in-degree of every out-neighbor of the
// nodes just placed, enqueueing any neighbor that newly reaches in-degree
// zero. Terminates when the frontier is empty. Total work is O(N+E).
func (g *DominationGraph) PopAndGetFronts() [][]int {
	g.checkAlive()
	g.destroyed = true

	inDeg := g.inDegree
	visited := make(map[int]bool, len(g.nodes))
	var frontier []int
	for _, i := range g.nodes {
		if inDeg[i] == 0 {
			frontier = append(frontier, i)
			visited[i] = true
		}
	}

	var fronts [][]int
	for len(frontier) > 0 {
		front := frontier
		frontier = nil
		for _, i := range front {
			for _, j := range g.out[i] {
				inDeg[j]--
				if inDeg[j] == 0 && !visited[j] {
					visited[j] = true
					frontier = append(frontier, j)
				}
			}
		}
		fronts = append(fronts, front)
	}
	return fronts
}

func (g *DominationGraph) checkAlive() {
	if g.destroyed {
		chk.Panic("domination graph: use after pop_and_get_fronts")
	}
}

// NonDominatedSort builds the domination graph for pool's objective vectors
// (evaluated once each via objAt) and returns its layered front peel. This is
// the entry point used by the evolution driver each generation.
func NonDominatedSort(n int, objAt func(i int) Objective) [][]int {
	g := NewDominationGraph()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	objs := make([]Objective, n)
	for i := 0; i < n; i++ {
		objs[i] = objAt(i)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if StrictlyDominates(objs[i], objs[j]) {
				g.AddEdge(i, j)
			}
		}
	}
	return g.PopAndGetFronts()
}
