package fov

// transform maps local octant coordinates to world offsets:
//
//	worldX = originX + x*xx + y*xy
//	worldY = originY + x*yx + y*yy
//
// where x is the depth column and y the row within it.
type transform struct {
	xx, xy, yx, yy int
}

var octants = [8]transform{
	{1, 0, 0, -1},
	{0, 1, -1, 0},
	{0, -1, -1, 0},
	{-1, 0, 0, -1},
	{-1, 0, 0, 1},
	{0, -1, 1, 0},
	{0, 1, 1, 0},
	{1, 0, 0, 1},
}

func (t transform) apply(ox, oy, x, y int) (int, int) {
	return ox + x*t.xx + y*t.xy, oy + x*t.yx + y*t.yy
}
