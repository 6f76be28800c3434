// Package entity assembles the handful of entities the scene needs.
package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
	"github.com/milk9111/cityfolio/grid"
	"github.com/milk9111/cityfolio/iso"
	"github.com/milk9111/cityfolio/path"
	"github.com/milk9111/cityfolio/prefabs"
	"github.com/milk9111/cityfolio/tileset"
)

// BuildCity creates the singleton city entity: the grid with the route paved
// through it, the checkpoint indices, the projection, and the calendar.
func BuildCity(w *ecs.World, spec *prefabs.CitySpec, rng *rand.Rand, screenW, screenH, topMargin int) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("entity: nil world or city spec")
	}

	g := grid.New(spec.Grid.Size)

	route, err := path.Generate(spec.Route.Start, spec.Route.End, spec.Route.Waypoints, rng)
	if err != nil {
		return 0, fmt.Errorf("entity: build city: %w", err)
	}
	checkpoints, err := path.CheckpointIndices(spec.Route.CheckpointFractions, len(route))
	if err != nil {
		return 0, fmt.Errorf("entity: build city: %w", err)
	}

	g.MarkRoute(route.Cells())
	g.ScatterParks(rng, spec.Grid.ParkChance)

	proj := iso.Centered(spec.Grid.Size, float64(spec.Grid.TileWidth), float64(spec.Grid.TileHeight),
		float64(screenW), float64(screenH), float64(topMargin))

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CityComponent, &component.City{
		Grid:        g,
		Route:       route,
		Checkpoints: checkpoints,
		Proj:        proj,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CalendarComponent, &component.Calendar{
		Day:         1,
		TicksPerDay: spec.Day.TicksPerDay,
	}); err != nil {
		return 0, err
	}
	return e, nil
}

// BuildRider creates the cyclist at the start of the route.
func BuildRider(w *ecs.World, spec *prefabs.RiderSpec, city *component.City, tiles *tileset.Set) (ecs.Entity, error) {
	if w == nil || spec == nil || city == nil || tiles == nil || tiles.Rider == nil {
		return 0, fmt.Errorf("entity: nil world, rider spec, city, or tileset")
	}
	if len(city.Route) == 0 {
		return 0, fmt.Errorf("entity: build rider: empty route")
	}

	start := city.Route[0]
	sx, sy := city.Proj.Cell(start.X, start.Y)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RiderComponent, &component.Rider{
		Speed:          spec.Speed,
		Phase:          component.RiderRunning,
		LastCheckpoint: -1,
		GridX:          float64(start.X),
		GridY:          float64(start.Y),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:      sx,
		Y:      sy,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, err
	}

	bounds := tiles.Rider.Bounds()
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Image:   tiles.Rider,
		OriginX: float64(bounds.Dx()) / 2,
		// Wheels rest a little below the cell center so the bike reads as
		// standing on the diamond, not floating at its tip.
		OriginY: float64(bounds.Dy()) - float64(tiles.TileH)/4,
	}); err != nil {
		return 0, err
	}
	return e, nil
}

// BuildSession creates the input-side entity: cursor state and the toolbelt.
func BuildSession(w *ecs.World) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: nil world")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CursorComponent, &component.Cursor{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ToolbeltComponent, &component.Toolbelt{
		Active: component.ToolInspect,
	}); err != nil {
		return 0, err
	}
	return e, nil
}
