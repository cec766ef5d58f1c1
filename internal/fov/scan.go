package fov

// run tracks the opacity of the previous in-range tile in a column.
type run int8

const (
	runNone run = iota
	runClear
	runOpaque
)

// sector is a wedge of one octant still to be swept, starting at column x.
type sector struct {
	x           int
	top, bottom slope
}

// octantScan sweeps one octant. Sectors split off by walls go on an
// explicit stack instead of the call stack; sectors never share state, so
// the order they are swept in does not change the result.
type octantScan struct {
	opacity OpacitySource
	metric  Metric
	sink    VisibilitySink
	t       transform
	ox, oy  int
	limit   int
	stack   []sector
}

func (s *octantScan) run() {
	s.stack = append(s.stack[:0], sector{x: 1, top: slope{1, 1}, bottom: slope{0, 1}})
	for len(s.stack) > 0 {
		sec := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.sweep(sec)
	}
}

func (s *octantScan) blocks(x, y int) bool {
	wx, wy := s.t.apply(s.ox, s.oy, x, y)
	return s.opacity.IsOpaque(wx, wy)
}

func (s *octantScan) mark(x, y int) {
	wx, wy := s.t.apply(s.ox, s.oy, x, y)
	s.sink.MarkVisible(wx, wy)
}

// sweep advances a sector column by column until it is fully shadowed,
// narrowed to nothing, or out of range.
func (s *octantScan) sweep(sec sector) {
	top, bottom := sec.top, sec.bottom
	for x := sec.x; x <= s.limit; x++ {
		topY := s.topY(x, top)
		bottomY := s.bottomY(x, bottom)

		prev := runNone
		for y := topY; y >= bottomY; y-- {
			if s.metric(x, y) > s.limit {
				continue
			}

			opaque := s.blocks(x, y)
			// Walls inside the sector are always lit. A clear tile on the
			// sector edge needs the sightline to reach its inner square.
			visible := opaque ||
				((y != topY || top.greater(y*4-1, x*4+1)) &&
					(y != bottomY || bottom.less(y*4+1, x*4-1)))
			if visible {
				s.mark(x, y)
			}

			if x == s.limit {
				continue
			}

			if opaque {
				if prev == runClear {
					// Clear to opaque: the part above continues past this
					// wall with its bottom raised to the wall's top edge.
					nx, ny := x*2, y*2+1
					if s.blocks(x, y+1) {
						nx-- // top-left corner is not beveled
					}
					if top.greater(ny, nx) {
						if y == bottomY {
							bottom = slope{ny, nx}
							break
						}
						s.stack = append(s.stack, sector{x: x + 1, top: top, bottom: slope{ny, nx}})
					} else if y == bottomY {
						return
					}
				}
				prev = runOpaque
			} else {
				if prev == runOpaque {
					// Opaque to clear: lower the top to the wall's bottom edge.
					nx, ny := x*2, y*2+1
					if s.blocks(x+1, y+1) {
						nx++ // bottom-right corner is not beveled
					}
					if bottom.greaterOrEqual(ny, nx) {
						return
					}
					top = slope{ny, nx}
				}
				prev = runClear
			}
		}

		if prev != runClear {
			return
		}
	}
}

// topY is the highest row the top sightline reaches in column x.
func (s *octantScan) topY(x int, top slope) int {
	if top.x == 1 {
		// top is still 1/1
		return x
	}

	// row the sightline enters from the left
	y := ((x*2-1)*top.y + top.x) / (top.x * 2)
	if s.blocks(x, y) {
		// A wall only lets the line climb into the tile above when its
		// top-left corner is beveled and the line clears the top center.
		if top.greaterOrEqual(y*2+1, x*2) && !s.blocks(x, y+1) {
			y++
		}
		return y
	}

	// Clear tile: the line climbs if it passes the bottom of the tile above.
	// Measure against its bottom-right corner when the tile up and to the
	// right is a wall, otherwise against the bottom center.
	ax := x * 2
	if s.blocks(x+1, y+1) {
		ax++
	}
	if top.greater(y*2+1, ax) {
		y++
	}
	return y
}

// bottomY is the lowest row the bottom sightline reaches in column x.
func (s *octantScan) bottomY(x int, bottom slope) int {
	if bottom.y == 0 {
		return 0
	}

	y := ((x*2-1)*bottom.y + bottom.x) / (bottom.x * 2)
	// Skip a wall whose beveled top-left corner the line passes over.
	if bottom.greaterOrEqual(y*2+1, x*2) && s.blocks(x, y) && !s.blocks(x, y+1) {
		y++
	}
	return y
}
