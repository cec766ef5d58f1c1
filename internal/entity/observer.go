// Package entity provides the things that move through a dungeon.
package entity

// DefaultSightRadius is how far an observer sees unless configured.
const DefaultSightRadius = 8

// Observer is the viewpoint visibility is computed from.
type Observer struct {
	X, Y        int  // Current position in the dungeon
	Symbol      rune // Display symbol
	SightRadius int  // Range limit for visibility queries
}

// NewObserver creates an observer at the given position. A non-positive
// radius sees only its own tile.
func NewObserver(x, y, sightRadius int) *Observer {
	return &Observer{
		X:           x,
		Y:           y,
		Symbol:      '@',
		SightRadius: sightRadius,
	}
}

// Move updates the observer position by the given delta.
func (o *Observer) Move(dx, dy int) {
	o.X += dx
	o.Y += dy
}

// Position returns the current x, y coordinates.
func (o *Observer) Position() (int, int) {
	return o.X, o.Y
}

// TryMove moves by (dx, dy) when walkable reports the target tile as
// walkable. It reports whether the observer moved.
func (o *Observer) TryMove(dx, dy int, walkable func(x, y int) bool) bool {
	if !walkable(o.X+dx, o.Y+dy) {
		return false
	}
	o.Move(dx, dy)
	return true
}
