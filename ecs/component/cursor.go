package component

// Cursor is the pointer state over the grid for the current tick.
type Cursor struct {
	TileX  int
	TileY  int
	OnGrid bool

	// Clicked is a one-tick primary-click edge.
	Clicked bool

	// UIBlocked is set by the game before the tick when an overlay owns the
	// pointer; the cursor system then reports no grid interaction.
	UIBlocked bool
}

var CursorComponent = NewComponent[Cursor]()
