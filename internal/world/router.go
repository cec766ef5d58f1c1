package world

// Route summarises how a room set was connected.
type Route struct {
	// Graph holds a weighted edge for every pair not joined through a
	// shared wall.
	Graph *Graph
	// Tree is the minimum spanning forest of Graph. Every edge in it was
	// carved as a corridor.
	Tree        []Edge
	DirectLinks int
	Corridors   int
}

// Connect carves rooms into g and joins them into one walkable region.
//
// The grid border is carved first as perimeter, then every room as walls
// around a floor. Rooms whose walls touch get an opening through both
// walls. The remaining pairs are weighted by centroid distance and an
// L-shaped corridor is carved along each edge of their minimum spanning
// forest. Two rooms in different components of that forest share a wall,
// so the result is connected.
func Connect(g *Grid, rooms []Room) Route {
	carvePerimeter(g)
	for _, r := range rooms {
		carveRoom(g, r)
	}

	n := len(rooms)
	linked := make([][]bool, n)
	for i := range linked {
		linked[i] = make([]bool, n)
	}
	for i := range rooms {
		for j := range rooms {
			if i == j {
				continue
			}
			if openSharedWall(g, rooms[i], rooms[j]) {
				linked[i][j] = true
				linked[j][i] = true
			}
		}
	}

	route := Route{Graph: NewGraph(n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if linked[i][j] {
				route.DirectLinks++
				continue
			}
			route.Graph.AddEdge(i, j, centroidDistance(rooms[i], rooms[j]))
		}
	}

	route.Tree = route.Graph.SpanningTree()
	for _, e := range route.Tree {
		carveCorridor(g, rooms[e.A].Center(), rooms[e.B].Center())
	}
	route.Corridors = len(route.Tree)
	return route
}

func carvePerimeter(g *Grid) {
	for x := 0; x < g.Width(); x++ {
		g.SetKind(x, 0, KindPerimeter)
		g.SetKind(x, g.Height()-1, KindPerimeter)
	}
	for y := 0; y < g.Height(); y++ {
		g.SetKind(0, y, KindPerimeter)
		g.SetKind(g.Width()-1, y, KindPerimeter)
	}
}

// carveRoom writes the room's walls and floor. Perimeter cells are kept.
func carveRoom(g *Grid, r Room) {
	for y := r.Y; y < r.Y2(); y++ {
		for x := r.X; x < r.X2(); x++ {
			if g.KindAt(x, y) == KindPerimeter {
				continue
			}
			if r.IsBoundary(x, y) {
				g.SetKind(x, y, KindWall)
			} else {
				g.SetKind(x, y, KindFloor)
			}
		}
	}
}

// openSharedWall opens the walls between r1 and r2 when r2 sits directly
// right of or below r1. Only rows or columns inside both rooms' walls are
// opened. It reports whether anything was opened.
func openSharedWall(g *Grid, r1, r2 Room) bool {
	opened := false

	if r1.X2() == r2.X {
		for y := max(r1.Y, r2.Y) + 1; y <= min(r1.Y2(), r2.Y2())-2; y++ {
			carveFloor(g, r1.X2()-1, y)
			carveFloor(g, r2.X, y)
			opened = true
		}
	}

	if r1.Y2() == r2.Y {
		for x := max(r1.X, r2.X) + 1; x <= min(r1.X2(), r2.X2())-2; x++ {
			carveFloor(g, x, r1.Y2()-1)
			carveFloor(g, x, r2.Y)
			opened = true
		}
	}

	return opened
}

// carveCorridor digs a horizontal run then a vertical run between a and
// b, starting from whichever has the smaller x.
func carveCorridor(g *Grid, a, b Point) {
	if b.X < a.X {
		a, b = b, a
	}

	for x := a.X; x <= b.X; x++ {
		carveFloor(g, x, a.Y)
		skin(g, x, a.Y-1)
		skin(g, x, a.Y+1)
	}

	y1, y2 := a.Y, b.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		carveFloor(g, b.X, y)
		skin(g, b.X-1, y)
		skin(g, b.X+1, y)
	}
}

// carveFloor turns void or wall into floor.
func carveFloor(g *Grid, x, y int) {
	switch g.KindAt(x, y) {
	case KindVoid, KindWall:
		g.SetKind(x, y, KindFloor)
	}
}

// skin walls off a void cell next to a corridor.
func skin(g *Grid, x, y int) {
	if g.KindAt(x, y) == KindVoid {
		g.SetKind(x, y, KindWall)
	}
}
