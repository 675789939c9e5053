package glimpse

// Cursor is the shape of the mouse cursor while it is over the window.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointingHand
	CursorText
	CursorCrosshair
	CursorResizeHorizontal
	CursorResizeVertical
)
