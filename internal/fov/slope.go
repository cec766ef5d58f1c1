package fov

// slope is the rational y/x bounding a sector. It is never converted to
// floating point.
type slope struct {
	y, x int
}

func (s slope) greater(y, x int) bool        { return s.y*x > s.x*y }
func (s slope) greaterOrEqual(y, x int) bool { return s.y*x >= s.x*y }
func (s slope) less(y, x int) bool           { return s.y*x < s.x*y }
