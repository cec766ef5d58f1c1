package world

// Room is a rectangle placed during generation. Its outermost cells
// become walls and the rest floor.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions including walls
}

// X2 is the first column right of the room.
func (r Room) X2() int { return r.X + r.Width }

// Y2 is the first row below the room.
func (r Room) Y2() int { return r.Y + r.Height }

// Center returns the room's centroid. For rooms at least 3 tiles across it
// is always an interior floor cell.
func (r Room) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains returns true if the given point is inside the room, walls included.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X2() && y >= r.Y && y < r.Y2()
}

// IsBoundary reports whether (x, y) is one of the room's wall cells.
func (r Room) IsBoundary(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || x == r.X2()-1 || y == r.Y || y == r.Y2()-1
}

// Intersects returns true if this room overlaps with another room.
// Rooms that only touch edge to edge do not intersect.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X2() &&
		r.X2() > other.X &&
		r.Y < other.Y2() &&
		r.Y2() > other.Y
}
