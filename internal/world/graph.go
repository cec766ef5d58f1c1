package world

import "math"

// Edge joins two rooms by index.
type Edge struct {
	A, B   int
	Weight float64
}

// Graph is an undirected graph over room indices.
type Graph struct {
	n     int
	edges []Edge
	index map[[2]int]int
}

// NewGraph creates a graph with n nodes and no edges.
func NewGraph(n int) *Graph {
	return &Graph{
		n:     n,
		index: make(map[[2]int]int),
	}
}

// Len returns the node count.
func (g *Graph) Len() int { return g.n }

// AddEdge adds an undirected weighted edge. Adding the same pair twice
// keeps the lighter weight.
func (g *Graph) AddEdge(a, b int, weight float64) {
	g.put(Edge{A: a, B: b, Weight: weight})
}

func (g *Graph) put(e Edge) {
	if e.A == e.B || e.A < 0 || e.B < 0 || e.A >= g.n || e.B >= g.n {
		return
	}
	if e.A > e.B {
		e.A, e.B = e.B, e.A
	}
	key := [2]int{e.A, e.B}
	if i, ok := g.index[key]; ok {
		if e.Weight < g.edges[i].Weight {
			g.edges[i] = e
		}
		return
	}
	g.index[key] = len(g.edges)
	g.edges = append(g.edges, e)
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Edge returns the edge between a and b, if any.
func (g *Graph) Edge(a, b int) (Edge, bool) {
	if a > b {
		a, b = b, a
	}
	i, ok := g.index[[2]int{a, b}]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// SpanningTree returns a minimum spanning forest using Prim's algorithm.
// Each returned edge has A set to the node already in the tree. Ties go
// to the lowest node index, so the result is deterministic. A connected
// graph yields Len()-1 edges; each further component costs one edge less.
func (g *Graph) SpanningTree() []Edge {
	if g.n < 2 {
		return nil
	}

	inTree := make([]bool, g.n)
	best := make([]float64, g.n)
	parent := make([]int, g.n)
	for i := range best {
		best[i] = math.Inf(1)
		parent[i] = -1
	}

	adj := make([][]int, g.n)
	for i, e := range g.edges {
		adj[e.A] = append(adj[e.A], i)
		adj[e.B] = append(adj[e.B], i)
	}

	tree := make([]Edge, 0, g.n-1)
	for added := 0; added < g.n; added++ {
		// Pick the cheapest frontier node. With nothing reachable, start a
		// new component at the lowest unvisited node.
		u := -1
		for v := 0; v < g.n; v++ {
			if inTree[v] {
				continue
			}
			if u == -1 || best[v] < best[u] {
				u = v
			}
		}
		inTree[u] = true

		if parent[u] >= 0 {
			e, _ := g.Edge(parent[u], u)
			e.A, e.B = parent[u], u
			tree = append(tree, e)
		}

		for _, i := range adj[u] {
			e := g.edges[i]
			v := e.B
			if v == u {
				v = e.A
			}
			if !inTree[v] && e.Weight < best[v] {
				best[v] = e.Weight
				parent[v] = u
			}
		}
	}
	return tree
}

func centroidDistance(a, b Room) float64 {
	ca, cb := a.Center(), b.Center()
	return math.Hypot(float64(ca.X-cb.X), float64(ca.Y-cb.Y))
}
