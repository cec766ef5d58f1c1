// Package world provides dungeon generation and the tile grid it produces.
package world

// Kind classifies the terrain of a single tile.
type Kind uint8

const (
	// KindVoid is unassigned rock between structures.
	KindVoid Kind = iota
	KindFloor
	KindWall
	KindDoor
	KindPit
	KindLava
	KindWater
	// KindPerimeter is the impassable border of the grid.
	KindPerimeter
)

// IsOpen reports whether the kind lets light and walkers through. Only
// floor, pit and lava are open.
func (k Kind) IsOpen() bool {
	switch k {
	case KindFloor, KindPit, KindLava:
		return true
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (k Kind) Rune() rune {
	switch k {
	case KindFloor:
		return '.'
	case KindWall:
		return '#'
	case KindDoor:
		return '\''
	case KindPit:
		return '^'
	case KindLava:
		return '~'
	case KindWater:
		return '='
	case KindPerimeter:
		return '+'
	default:
		return ' '
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	case KindPit:
		return "pit"
	case KindLava:
		return "lava"
	case KindWater:
		return "water"
	case KindPerimeter:
		return "perimeter"
	default:
		return "unknown"
	}
}

// KindFromRune is the inverse of Kind.Rune. Unknown runes map to void.
func KindFromRune(r rune) Kind {
	for k := KindVoid; k <= KindPerimeter; k++ {
		if k.Rune() == r {
			return k
		}
	}
	return KindVoid
}

// Tile is one grid cell.
type Tile struct {
	Kind Kind
	// Visible is set by the latest visibility query only.
	Visible bool
	// Seen sticks once a tile has been visible.
	Seen bool
}
