package fov

import "math"

// Metric returns the distance from the origin to a point in canonical
// octant coordinates, where x >= y >= 0. A tile is in range when its
// distance is at most the range limit.
type Metric func(x, y int) int

// Euclidean is straight-line distance rounded to the nearest tile, so a
// range of 1 reaches the diagonal neighbours.
func Euclidean(x, y int) int {
	return int(math.Round(math.Sqrt(float64(x*x + y*y))))
}

// Chebyshev counts king moves; every range is a square.
func Chebyshev(x, y int) int {
	return max(x, y)
}
