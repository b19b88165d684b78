package render

// Board dimensions in terminal cells. Everything is laid out in board
// coordinates and translated to the screen by the Camera.
const (
	BoardWidth  = 60
	BoardHeight = 22
)

// Camera translates between board coordinates and screen coordinates,
// keeping the board centred on whatever terminal size the player has.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera for a view of the given size.
func NewCamera(viewW, viewH int) *Camera {
	c := &Camera{}
	c.Resize(viewW, viewH)
	return c
}

// Resize recentres the board for a new view size. Small terminals pin
// the board to the top-left corner rather than cutting off its start.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.OffsetX = max(0, (viewW-BoardWidth)/2)
	c.OffsetY = max(0, (viewH-BoardHeight)/2)
}

// BoardToScreen converts board (bx, by) to screen (sx, sy).
// visible is false when the result falls outside the view.
func (c *Camera) BoardToScreen(bx, by int) (sx, sy int, visible bool) {
	sx = bx + c.OffsetX
	sy = by + c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToBoard converts screen (sx, sy) to board coordinates.
func (c *Camera) ScreenToBoard(sx, sy int) (int, int) {
	return sx - c.OffsetX, sy - c.OffsetY
}
