// Package iso converts between grid coordinates and screen coordinates for a
// 2:1 isometric view.
package iso

import "math"

// Projection describes the isometric view: diamond tile metrics plus the
// screen position of cell (0, 0)'s center.
type Projection struct {
	TileW   float64
	TileH   float64
	OriginX float64
	OriginY float64
}

// Centered builds a projection that centers a size×size grid inside a
// screenW×screenH viewport, leaving topMargin pixels above the map.
func Centered(size int, tileW, tileH, screenW, screenH, topMargin float64) Projection {
	mapH := float64(size) * tileH
	return Projection{
		TileW:   tileW,
		TileH:   tileH,
		OriginX: screenW / 2,
		OriginY: topMargin + (screenH-topMargin-mapH)/2 + tileH/2,
	}
}

// Project maps fractional grid coordinates to the screen position of that
// point's diamond center. Integer inputs land on cell centers.
func (p Projection) Project(gx, gy float64) (float64, float64) {
	sx := (gx - gy) * p.TileW / 2
	sy := (gx + gy) * p.TileH / 2
	return p.OriginX + sx, p.OriginY + sy
}

// Cell maps a cell coordinate to its diamond center on screen.
func (p Projection) Cell(x, y int) (float64, float64) {
	return p.Project(float64(x), float64(y))
}

// Pick inverts Project, returning the cell whose diamond contains the screen
// point. Callers must still bounds-check against the grid.
func (p Projection) Pick(sx, sy float64) (int, int) {
	a := (sx - p.OriginX) / (p.TileW / 2)
	b := (sy - p.OriginY) / (p.TileH / 2)
	gx := (a + b) / 2
	gy := (b - a) / 2
	return int(math.Round(gx)), int(math.Round(gy))
}

// Depth orders draw calls back to front: larger values draw later.
func Depth(gx, gy float64) float64 {
	return gx + gy
}
