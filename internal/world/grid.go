package world

import (
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a fixed-size tile map. Coordinates outside the grid read as
// perimeter, so they block light and movement.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid of void tiles.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns a copy of the tile at (x, y). Out-of-range reads return a
// perimeter tile.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{Kind: KindPerimeter}
	}
	return g.tiles[y*g.width+x]
}

// KindAt returns the terrain at (x, y).
func (g *Grid) KindAt(x, y int) Kind {
	return g.At(x, y).Kind
}

// SetKind changes the terrain at (x, y). Writes outside the grid are
// ignored. Only generation should call this.
func (g *Grid) SetKind(x, y int, k Kind) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.width+x].Kind = k
}

// IsOpaque reports whether (x, y) blocks light.
func (g *Grid) IsOpaque(x, y int) bool {
	return !g.KindAt(x, y).IsOpen()
}

// IsWalkable reports whether (x, y) can be walked on.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.KindAt(x, y).IsOpen()
}

// MarkVisible flags (x, y) as currently visible and seen.
func (g *Grid) MarkVisible(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	t := &g.tiles[y*g.width+x]
	t.Visible = true
	t.Seen = true
}

// ClearVisible resets the currently-visible flag on every tile. Seen
// flags are kept.
func (g *Grid) ClearVisible() {
	for i := range g.tiles {
		g.tiles[i].Visible = false
	}
}

// IsVisible reports whether (x, y) was visible in the latest query.
func (g *Grid) IsVisible(x, y int) bool {
	return g.At(x, y).Visible
}

// IsSeen reports whether (x, y) has ever been visible.
func (g *Grid) IsSeen(x, y int) bool {
	return g.At(x, y).Seen
}

// Reachable returns every walkable tile 4-connected to from, sorted row by
// row. It is empty when from is not walkable.
func (g *Grid) Reachable(from Point) []Point {
	reached := g.flood(from, mapset.New[Point]())
	pts := make([]Point, 0, reached.Size())
	reached.Each(func(p Point) {
		pts = append(pts, p)
	})
	slices.SortFunc(pts, comparePoints)
	return pts
}

// WalkableRegions counts the 4-connected regions of walkable tiles.
func (g *Grid) WalkableRegions() int {
	visited := mapset.New[Point]()
	regions := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			if !g.IsWalkable(x, y) || visited.Has(p) {
				continue
			}
			g.flood(p, visited)
			regions++
		}
	}
	return regions
}

// flood adds every walkable tile reachable from start to visited.
func (g *Grid) flood(start Point, visited mapset.Set[Point]) mapset.Set[Point] {
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !g.IsWalkable(cur.X, cur.Y) || visited.Has(cur) {
			continue
		}
		visited.Put(cur)

		for _, d := range orthogonal {
			n := Point{cur.X + d.X, cur.Y + d.Y}
			if g.IsWalkable(n.X, n.Y) && !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// String draws the grid one row per line using Kind.Rune.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.tiles[y*g.width+x].Kind.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
