// Package grid holds the buildable tile grid and its edit rules.
package grid

import "math/rand/v2"

// BuildingType is the closed set of things a tile can hold.
type BuildingType uint8

const (
	BuildingNone BuildingType = iota
	BuildingRoad
	BuildingResidential
	BuildingCommercial
	BuildingIndustrial
	BuildingPark
)

func (b BuildingType) String() string {
	switch b {
	case BuildingNone:
		return "none"
	case BuildingRoad:
		return "road"
	case BuildingResidential:
		return "residential"
	case BuildingCommercial:
		return "commercial"
	case BuildingIndustrial:
		return "industrial"
	case BuildingPark:
		return "park"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate pair.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Tile is one grid cell.
type Tile struct {
	X        int
	Y        int
	Building BuildingType
}

// Grid is a fixed N×N tile grid. Shape is immutable; content changes only
// through Place, Bulldoze, MarkRoute, and ScatterParks.
type Grid struct {
	size    int
	tiles   []Tile
	onRoute []bool
}

// New creates an empty size×size grid.
func New(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	g := &Grid{
		size:    size,
		tiles:   make([]Tile, size*size),
		onRoute: make([]bool, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.tiles[y*size+x] = Tile{X: x, Y: y}
		}
	}
	return g
}

// Size returns the grid edge length.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.size
}

// InBounds reports whether (x, y) is a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return g != nil && x >= 0 && x < g.size && y >= 0 && y < g.size
}

// At returns the tile at (x, y).
func (g *Grid) At(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[y*g.size+x], true
}

// OnRoute reports whether (x, y) belongs to the fixed route.
func (g *Grid) OnRoute(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.onRoute[y*g.size+x]
}

// MarkRoute pins the given cells as route tiles and paves them as roads.
// Route tiles are protected from all later edits.
func (g *Grid) MarkRoute(cells []Cell) {
	if g == nil {
		return
	}
	for _, c := range cells {
		if !g.InBounds(c.X, c.Y) {
			continue
		}
		i := c.Y*g.size + c.X
		g.onRoute[i] = true
		g.tiles[i].Building = BuildingRoad
	}
}

// ScatterParks runs the single startup decoration pass: every empty
// off-route tile becomes a park with probability chance.
func (g *Grid) ScatterParks(rng *rand.Rand, chance float64) {
	if g == nil || rng == nil || chance <= 0 {
		return
	}
	for i := range g.tiles {
		if g.onRoute[i] || g.tiles[i].Building != BuildingNone {
			continue
		}
		if rng.Float64() < chance {
			g.tiles[i].Building = BuildingPark
		}
	}
}

// Count returns how many tiles currently hold the given building type.
func (g *Grid) Count(b BuildingType) int {
	if g == nil {
		return 0
	}
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Building == b {
			n++
		}
	}
	return n
}
