package grid

import "errors"

var (
	ErrOutOfBounds  = errors.New("grid: cell out of bounds")
	ErrTileOccupied = errors.New("grid: tile already occupied")
	ErrOnRoute      = errors.New("grid: tile is part of the route")
)

// Place puts a building on (x, y). The tile must be empty and off the route.
// There is no cost model; funds are effectively infinite.
func (g *Grid) Place(x, y int, b BuildingType) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if g.OnRoute(x, y) {
		return ErrOnRoute
	}
	i := y*g.size + x
	if g.tiles[i].Building != BuildingNone {
		return ErrTileOccupied
	}
	g.tiles[i].Building = b
	return nil
}

// Bulldoze clears (x, y). Route tiles cannot be bulldozed.
func (g *Grid) Bulldoze(x, y int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if g.OnRoute(x, y) {
		return ErrOnRoute
	}
	g.tiles[y*g.size+x].Building = BuildingNone
	return nil
}
