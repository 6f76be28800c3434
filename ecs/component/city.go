package component

import (
	"github.com/milk9111/cityfolio/grid"
	"github.com/milk9111/cityfolio/iso"
	"github.com/milk9111/cityfolio/path"
)

// City is the singleton scene state: the tile grid, the fixed route, the
// checkpoint indices along it, and the projection used to draw and pick.
type City struct {
	Grid        *grid.Grid
	Route       path.Route
	Checkpoints []int
	Proj        iso.Projection
}

// CheckpointOrdinal returns the position of a route index within the
// checkpoint list, or -1 when the index is not a checkpoint.
func (c *City) CheckpointOrdinal(routeIndex int) int {
	if c == nil {
		return -1
	}
	for i, idx := range c.Checkpoints {
		if idx == routeIndex {
			return i
		}
	}
	return -1
}

var CityComponent = NewComponent[City]()
