// Package path builds the fixed route the rider travels and picks the
// checkpoint indices along it.
package path

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/cityfolio/grid"
)

// Route is the ordered walk from start to end. Computed once at startup and
// never mutated; shared read-only by the renderer and the rider.
type Route []grid.Cell

// Generate walks start → each waypoint → end using greedy unit steps.
// Every consecutive pair of cells differs by exactly one unit on exactly one
// axis. When both remaining deltas are non-zero the larger one is reduced
// first; on equal deltas the axis is chosen at random from rng.
func Generate(start, end grid.Cell, waypoints []grid.Cell, rng *rand.Rand) (Route, error) {
	if rng == nil {
		return nil, fmt.Errorf("path: nil rng")
	}

	targets := make([]grid.Cell, 0, len(waypoints)+1)
	targets = append(targets, waypoints...)
	targets = append(targets, end)

	route := Route{start}
	cur := start
	for _, target := range targets {
		for cur != target {
			cur = step(cur, target, rng)
			route = append(route, cur)
		}
	}
	if len(route) < 2 {
		return nil, fmt.Errorf("path: degenerate route from %+v to %+v", start, end)
	}
	return route, nil
}

// step moves cur one unit toward target along a single axis. Each call
// strictly reduces the remaining delta on the chosen axis, so the walk
// terminates.
func step(cur, target grid.Cell, rng *rand.Rand) grid.Cell {
	dx := target.X - cur.X
	dy := target.Y - cur.Y

	alongX := false
	switch {
	case dy == 0:
		alongX = true
	case dx == 0:
		alongX = false
	case abs(dx) > abs(dy):
		alongX = true
	case abs(dx) < abs(dy):
		alongX = false
	default:
		alongX = rng.IntN(2) == 0
	}

	if alongX {
		cur.X += sign(dx)
	} else {
		cur.Y += sign(dy)
	}
	return cur
}

// Contains reports whether the route passes through c.
func (r Route) Contains(c grid.Cell) bool {
	for _, cell := range r {
		if cell == c {
			return true
		}
	}
	return false
}

// Cells returns the route as a plain cell slice for grid.MarkRoute.
func (r Route) Cells() []grid.Cell {
	return []grid.Cell(r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
