package gridkey

// cursor is the highlighted cell. Movement wraps toroidally, so the
// position is always in [0,width) x [0,height).
type cursor struct {
	x, y int
}

func (c cursor) move(dx, dy, width, height int) cursor {
	return cursor{
		x: (c.x + dx + width) % width,
		y: (c.y + dy + height) % height,
	}
}
