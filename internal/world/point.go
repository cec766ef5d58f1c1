package world

import "fmt"

// Point is a grid coordinate, origin at the top-left.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders points row by row.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

var orthogonal = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
