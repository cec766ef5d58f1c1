package world

import (
	"errors"
	"fmt"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 40

	DefaultMinRoom     = 4
	DefaultMaxRoom     = 12
	DefaultMaxAttempts = 1000

	// MinRoomSize is the smallest room that still has a floor cell
	// inside its walls.
	MinRoomSize = 3
)

var (
	// ErrInvalidDimensions is returned for a non-positive grid size.
	ErrInvalidDimensions = errors.New("world: invalid dimensions")
	// ErrInvalidRoomSize is returned when the room size range is empty
	// or too small to hold a floor, or the attempt budget is negative.
	ErrInvalidRoomSize = errors.New("world: invalid room size")
)

// Params controls dungeon generation.
type Params struct {
	Width, Height    int
	MinRoom, MaxRoom int
	// MaxAttempts bounds room placement. Zero means DefaultMaxAttempts.
	MaxAttempts int
}

// DefaultParams returns the standard 80x40 layout settings.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MinRoom:     DefaultMinRoom,
		MaxRoom:     DefaultMaxRoom,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate checks the parameters once before generation. Room sizes that
// do not fit the grid are not an error; the sampler skips them.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.MinRoom < MinRoomSize {
		return fmt.Errorf("%w: min room %d is below %d", ErrInvalidRoomSize, p.MinRoom, MinRoomSize)
	}
	if p.MinRoom > p.MaxRoom {
		return fmt.Errorf("%w: min room %d exceeds max room %d", ErrInvalidRoomSize, p.MinRoom, p.MaxRoom)
	}
	if p.MaxAttempts < 0 {
		return fmt.Errorf("%w: negative attempt budget %d", ErrInvalidRoomSize, p.MaxAttempts)
	}
	return nil
}

// TargetRooms is the room count the sampler aims for. It is a density
// heuristic and never less than one.
func (p Params) TargetRooms() int {
	return max(1, (p.Width*p.Height)/(p.MinRoom*p.MaxRoom*2))
}

func (p Params) attempts() int {
	if p.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}
