package fov

import (
	"strings"
	"testing"
)

type point struct{ x, y int }

// asciiMap is a test map parsed from rows of text. '.' is clear, anything
// else is opaque. Coordinates outside the rows are opaque.
type asciiMap struct {
	rows []string
	w, h int
}

func parseMap(rows ...string) asciiMap {
	return asciiMap{rows: rows, w: len(rows[0]), h: len(rows)}
}

func (m asciiMap) inBounds(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

func (m asciiMap) IsOpaque(x, y int) bool {
	if !m.inBounds(x, y) {
		return true
	}
	return m.rows[y][x] != '.'
}

// collector records in-bounds marks.
type collector struct {
	m   asciiMap
	set map[point]bool
}

func newCollector(m asciiMap) *collector {
	return &collector{m: m, set: make(map[point]bool)}
}

func (c *collector) MarkVisible(x, y int) {
	if c.m.inBounds(x, y) {
		c.set[point{x, y}] = true
	}
}

func visibleFrom(m asciiMap, ox, oy, limit int) map[point]bool {
	c := newCollector(m)
	New(m, nil).Compute(ox, oy, limit, c)
	return c.set
}

// render draws the map with '?' over tiles that were not seen and '@' at
// the origin.
func render(m asciiMap, vis map[point]bool, ox, oy int) string {
	var b strings.Builder
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			switch {
			case x == ox && y == oy:
				b.WriteByte('@')
			case vis[point{x, y}]:
				b.WriteByte(m.rows[y][x])
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestComputeFixtures(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		ox, oy int
		limit  int
		want   string
	}{
		{
			name: "single wall shadow",
			rows: []string{
				".....",
				".....",
				"..#..",
				".....",
				".....",
			},
			ox: 0, oy: 0, limit: 10,
			want: "" +
				"@....\n" +
				".....\n" +
				"..#..\n" +
				"...?.\n" +
				"....?\n",
		},
		{
			name: "enclosed cell",
			rows: []string{
				"###",
				"#.#",
				"###",
			},
			ox: 1, oy: 1, limit: 1,
			want: "" +
				"###\n" +
				"#@#\n" +
				"###\n",
		},
		{
			name: "pillared hall",
			rows: []string{
				"###########",
				"#.........#",
				"#..#......#",
				"#.........#",
				"#......#..#",
				"#.........#",
				"###########",
			},
			ox: 5, oy: 3, limit: 20,
			want: "" +
				"??#########\n" +
				"??........#\n" +
				"#..#......#\n" +
				"#....@....#\n" +
				"#......#..#\n" +
				"#........??\n" +
				"#########??\n",
		},
		{
			name: "pillared hall short range",
			rows: []string{
				"###########",
				"#.........#",
				"#..#......#",
				"#.........#",
				"#......#..#",
				"#.........#",
				"###########",
			},
			ox: 5, oy: 3, limit: 2,
			want: "" +
				"???????????\n" +
				"????...????\n" +
				"???#....???\n" +
				"???..@..???\n" +
				"???....#???\n" +
				"????...????\n" +
				"???????????\n",
		},
		{
			name: "ring corridor",
			rows: []string{
				"#########",
				"#.......#",
				"#.#####.#",
				"#.#...#.#",
				"#.#.....#",
				"#.#####.#",
				"#.......#",
				"#########",
			},
			ox: 1, oy: 1, limit: 20,
			want: "" +
				"#########\n" +
				"#@......#\n" +
				"#.#####?#\n" +
				"#.#??????\n" +
				"#.#??????\n" +
				"#.#??????\n" +
				"#.???????\n" +
				"###??????\n",
		},
		{
			name: "inner room",
			rows: []string{
				"#########",
				"#.......#",
				"#.#####.#",
				"#.#...#.#",
				"#.#.....#",
				"#.#####.#",
				"#.......#",
				"#########",
			},
			ox: 4, oy: 4, limit: 20,
			want: "" +
				"?????????\n" +
				"?????????\n" +
				"??#####??\n" +
				"??#...#.#\n" +
				"??#.@...#\n" +
				"??#####.#\n" +
				"?????????\n" +
				"?????????\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseMap(tt.rows...)
			got := render(m, visibleFrom(m, tt.ox, tt.oy, tt.limit), tt.ox, tt.oy)
			if got != tt.want {
				t.Errorf("visible map =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestComputeSingleWallCount(t *testing.T) {
	m := parseMap(
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)
	vis := visibleFrom(m, 0, 0, 10)

	if len(vis) != 23 {
		t.Errorf("visible count = %d, want 23", len(vis))
	}
	if !vis[point{2, 2}] {
		t.Error("wall (2,2) should be visible")
	}
	for _, p := range []point{{3, 3}, {4, 4}} {
		if vis[p] {
			t.Errorf("%v is behind the wall and should be hidden", p)
		}
	}
}

func TestComputeOriginAlwaysVisible(t *testing.T) {
	m := parseMap(
		"###",
		"###",
		"###",
	)
	for _, limit := range []int{-3, 0, 1, 5} {
		vis := visibleFrom(m, 1, 1, limit)
		if !vis[point{1, 1}] {
			t.Errorf("limit %d: origin not visible", limit)
		}
	}
}

func TestComputeNonPositiveRange(t *testing.T) {
	m := parseMap(
		".....",
		".....",
		".....",
	)
	for _, limit := range []int{0, -1, -100} {
		vis := visibleFrom(m, 2, 1, limit)
		if len(vis) != 1 || !vis[point{2, 1}] {
			t.Errorf("limit %d: visible = %v, want only origin", limit, vis)
		}
	}
}

func TestComputeOpenFieldShape(t *testing.T) {
	const n, c = 21, 10
	open := OpacityFunc(func(x, y int) bool {
		return x < 0 || y < 0 || x >= n || y >= n
	})

	tests := []struct {
		name   string
		metric Metric
		dist   func(dx, dy int) int
	}{
		{"euclidean", Euclidean, func(dx, dy int) int { return Euclidean(dx, dy) }},
		{"chebyshev", Chebyshev, func(dx, dy int) int { return max(dx, dy) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for limit := 0; limit < 10; limit++ {
				got := make(map[point]bool)
				New(open, tt.metric).Compute(c, c, limit, SinkFunc(func(x, y int) {
					got[point{x, y}] = true
				}))

				for y := 0; y < n; y++ {
					for x := 0; x < n; x++ {
						dx, dy := abs(x-c), abs(y-c)
						want := tt.dist(max(dx, dy), min(dx, dy)) <= limit
						if got[point{x, y}] != want {
							t.Fatalf("limit %d: (%d,%d) visible = %v, want %v", limit, x, y, got[point{x, y}], want)
						}
					}
				}
			}
		})
	}
}

func TestComputeConvexRoomWalls(t *testing.T) {
	for w := 3; w <= 11; w++ {
		for h := 3; h <= 9; h++ {
			rows := make([]string, h)
			rows[0] = strings.Repeat("#", w)
			rows[h-1] = rows[0]
			for y := 1; y < h-1; y++ {
				rows[y] = "#" + strings.Repeat(".", w-2) + "#"
			}
			m := parseMap(rows...)

			for oy := 1; oy < h-1; oy++ {
				for ox := 1; ox < w-1; ox++ {
					vis := visibleFrom(m, ox, oy, 100)
					if len(vis) != w*h {
						t.Fatalf("%dx%d room from (%d,%d): %d of %d tiles visible\n%s",
							w, h, ox, oy, len(vis), w*h, render(m, vis, ox, oy))
					}
				}
			}
		}
	}
}

func TestComputeMonotonicInRange(t *testing.T) {
	const n, c = 21, 10
	for seed := uint32(1); seed <= 100; seed++ {
		m := hashedMap(seed, n, c, c)
		prev := map[point]bool{}
		for limit := 0; limit < 15; limit++ {
			vis := visibleFrom(m, c, c, limit)
			for p := range prev {
				if !vis[p] {
					t.Fatalf("seed %d: %v visible at range %d but not %d", seed, p, limit-1, limit)
				}
			}
			prev = vis
		}
	}
}

func TestComputeRotationInvariant(t *testing.T) {
	const n, c = 15, 7
	for seed := uint32(1); seed <= 100; seed++ {
		m := hashedMap(seed, n, c, c)
		rot := rotate(m)

		a := visibleFrom(m, c, c, 8)
		b := visibleFrom(rot, c, c, 8)
		if len(a) != len(b) {
			t.Fatalf("seed %d: %d visible, %d after rotation", seed, len(a), len(b))
		}
		for p := range a {
			r := point{n - 1 - p.y, p.x}
			if !b[r] {
				t.Fatalf("seed %d: %v visible but rotated %v is not", seed, p, r)
			}
		}
	}
}

func TestComputeOctantsCoverCompute(t *testing.T) {
	const n, c = 15, 7
	for seed := uint32(1); seed <= 50; seed++ {
		m := hashedMap(seed, n, c, c)
		e := New(m, nil)

		whole := newCollector(m)
		e.Compute(c, c, 8, whole)

		parts := newCollector(m)
		parts.MarkVisible(c, c)
		for octant := 0; octant < 8; octant++ {
			e.ComputeOctant(octant, c, c, 8, parts)
		}

		if len(whole.set) != len(parts.set) {
			t.Fatalf("seed %d: Compute saw %d tiles, octants %d", seed, len(whole.set), len(parts.set))
		}
		for p := range whole.set {
			if !parts.set[p] {
				t.Fatalf("seed %d: %v missing from octant union", seed, p)
			}
		}
	}
}

func TestComputeOctantEast(t *testing.T) {
	open := OpacityFunc(func(x, y int) bool {
		return x < 0 || y < 0 || x >= 9 || y >= 9
	})
	got := make(map[point]bool)
	New(open, nil).ComputeOctant(0, 4, 4, 4, SinkFunc(func(x, y int) {
		got[point{x, y}] = true
	}))

	want := []point{
		{5, 3}, {5, 4},
		{6, 2}, {6, 3}, {6, 4},
		{7, 1}, {7, 2}, {7, 3}, {7, 4},
		{8, 2}, {8, 3}, {8, 4},
	}
	if len(got) != len(want) {
		t.Errorf("octant 0 marked %d tiles, want %d: %v", len(got), len(want), got)
	}
	for _, p := range want {
		if !got[p] {
			t.Errorf("octant 0 missing %v", p)
		}
	}
}

func TestComputeOctantOutOfRange(t *testing.T) {
	calls := 0
	sink := SinkFunc(func(x, y int) { calls++ })
	e := New(OpacityFunc(func(x, y int) bool { return false }), nil)

	e.ComputeOctant(-1, 0, 0, 5, sink)
	e.ComputeOctant(8, 0, 0, 5, sink)
	e.ComputeOctant(0, 0, 0, 0, sink)
	if calls != 0 {
		t.Errorf("invalid octant calls marked %d tiles, want 0", calls)
	}
}

func TestSlopeCompare(t *testing.T) {
	half := slope{1, 2}
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"1/2 > 1/3", half.greater(1, 3), true},
		{"1/2 > 2/4", half.greater(2, 4), false},
		{"1/2 >= 2/4", half.greaterOrEqual(2, 4), true},
		{"1/2 >= 3/5", half.greaterOrEqual(3, 5), false},
		{"1/2 < 3/5", half.less(3, 5), true},
		{"1/2 < 1/2", half.less(1, 2), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

// hashedMap builds an n x n map with roughly 30% walls from a fixed
// integer hash. The origin is always clear.
func hashedMap(seed uint32, n, ox, oy int) asciiMap {
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		var b strings.Builder
		for x := 0; x < n; x++ {
			if (x != ox || y != oy) && hashWall(seed, x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return parseMap(rows...)
}

func hashWall(seed uint32, x, y int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663 ^ seed*83492791
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h%100 < 30
}

// rotate turns a square map 90 degrees so (x, y) moves to (n-1-y, x).
func rotate(m asciiMap) asciiMap {
	n := m.w
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		var b strings.Builder
		for x := 0; x < n; x++ {
			b.WriteByte(m.rows[n-1-x][y])
		}
		rows[y] = b.String()
	}
	return parseMap(rows...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
