package system

import (
	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
	"github.com/milk9111/cityfolio/grid"
)

// BuildSystem applies the active tool to the clicked tile. The grid's own
// edit rules decide legality; rejected edits are silently dropped.
type BuildSystem struct{}

func NewBuildSystem() *BuildSystem {
	return &BuildSystem{}
}

func (b *BuildSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, city, ok := ecs.First(w, component.CityComponent)
	if !ok || city.Grid == nil {
		return
	}

	ecs.ForEach2(w, component.CursorComponent, component.ToolbeltComponent,
		func(_ ecs.Entity, cur *component.Cursor, belt *component.Toolbelt) {
			if !cur.Clicked || !cur.OnGrid {
				return
			}
			applyTool(w, city, belt.Active, cur.TileX, cur.TileY)
		})
}

func applyTool(w *ecs.World, city *component.City, tool component.Tool, x, y int) {
	switch tool {
	case component.ToolInspect:
		return
	case component.ToolBulldoze:
		prev, _ := city.Grid.At(x, y)
		if prev.Building == grid.BuildingNone {
			return
		}
		if err := city.Grid.Bulldoze(x, y); err != nil {
			return
		}
		w.Events().Push(ecs.Event{
			Type: component.EventBuildingRemoved,
			Data: component.BuildingRemoved{X: x, Y: y, Building: prev.Building},
		})
	default:
		building, ok := tool.Building()
		if !ok {
			return
		}
		if err := city.Grid.Place(x, y, building); err != nil {
			return
		}
		w.Events().Push(ecs.Event{
			Type: component.EventBuildingPlaced,
			Data: component.BuildingPlaced{X: x, Y: y, Building: building},
		})
	}
}
