package system

import (
	"testing"

	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
	"github.com/milk9111/cityfolio/grid"
	"github.com/milk9111/cityfolio/iso"
	"github.com/milk9111/cityfolio/path"
)

func newBuildWorld(t *testing.T) (*ecs.World, *grid.Grid, *component.Cursor, *component.Toolbelt) {
	t.Helper()

	w := ecs.NewWorld()

	route := path.Route{{X: 0, Y: 0}, {X: 1, Y: 0}}
	g := grid.New(4)
	g.MarkRoute(route.Cells())

	cityEnt := ecs.CreateEntity(w)
	if err := ecs.Add(w, cityEnt, component.CityComponent, &component.City{
		Grid:  g,
		Route: route,
		Proj:  iso.Projection{TileW: 64, TileH: 32},
	}); err != nil {
		t.Fatalf("add city: %v", err)
	}

	sessionEnt := ecs.CreateEntity(w)
	cur := &component.Cursor{}
	belt := &component.Toolbelt{Active: component.ToolInspect}
	if err := ecs.Add(w, sessionEnt, component.CursorComponent, cur); err != nil {
		t.Fatalf("add cursor: %v", err)
	}
	if err := ecs.Add(w, sessionEnt, component.ToolbeltComponent, belt); err != nil {
		t.Fatalf("add toolbelt: %v", err)
	}

	return w, g, cur, belt
}

func click(cur *component.Cursor, x, y int) {
	cur.TileX = x
	cur.TileY = y
	cur.OnGrid = true
	cur.Clicked = true
}

func TestBuildPlacesBuildings(t *testing.T) {
	cases := []struct {
		name string
		tool component.Tool
		want grid.BuildingType
	}{
		{"road", component.ToolRoad, grid.BuildingRoad},
		{"residential", component.ToolResidential, grid.BuildingResidential},
		{"commercial", component.ToolCommercial, grid.BuildingCommercial},
		{"industrial", component.ToolIndustrial, grid.BuildingIndustrial},
		{"park", component.ToolPark, grid.BuildingPark},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, g, cur, belt := newBuildWorld(t)
			belt.Active = c.tool
			click(cur, 2, 2)

			NewBuildSystem().Update(w)

			tile, _ := g.At(2, 2)
			if tile.Building != c.want {
				t.Fatalf("building = %v, want %v", tile.Building, c.want)
			}
			evts := w.Events().Drain()
			if len(evts) != 1 || evts[0].Type != component.EventBuildingPlaced {
				t.Fatalf("events = %v, want one placed event", evts)
			}
			data, ok := evts[0].Data.(component.BuildingPlaced)
			if !ok || data.X != 2 || data.Y != 2 || data.Building != c.want {
				t.Fatalf("placed payload = %+v", evts[0].Data)
			}
		})
	}
}

func TestBuildRejections(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt)
	}{
		{
			name: "no_click",
			setup: func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt) {
				belt.Active = component.ToolPark
				cur.TileX, cur.TileY, cur.OnGrid = 2, 2, true
			},
		},
		{
			name: "off_grid",
			setup: func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt) {
				belt.Active = component.ToolPark
				cur.TileX, cur.TileY, cur.Clicked = 2, 2, true
			},
		},
		{
			name: "inspect_tool",
			setup: func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt) {
				belt.Active = component.ToolInspect
				click(cur, 2, 2)
			},
		},
		{
			name: "route_cell",
			setup: func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt) {
				belt.Active = component.ToolResidential
				click(cur, 1, 0)
			},
		},
		{
			name: "occupied_cell",
			setup: func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt) {
				if err := g.Place(2, 2, grid.BuildingPark); err != nil {
					t.Fatalf("setup place: %v", err)
				}
				belt.Active = component.ToolResidential
				click(cur, 2, 2)
			},
		},
		{
			name: "bulldoze_empty",
			setup: func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt) {
				belt.Active = component.ToolBulldoze
				click(cur, 2, 2)
			},
		},
		{
			name: "bulldoze_route",
			setup: func(t *testing.T, g *grid.Grid, cur *component.Cursor, belt *component.Toolbelt) {
				belt.Active = component.ToolBulldoze
				click(cur, 0, 0)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, g, cur, belt := newBuildWorld(t)
			c.setup(t, g, cur, belt)

			NewBuildSystem().Update(w)

			if n := w.Events().Len(); n != 0 {
				t.Fatalf("events = %d, want none", n)
			}
			// Route cells stay paved no matter what.
			tile, _ := g.At(1, 0)
			if tile.Building != grid.BuildingRoad {
				t.Fatalf("route cell changed: %v", tile.Building)
			}
		})
	}
}

func TestBuildBulldoze(t *testing.T) {
	w, g, cur, belt := newBuildWorld(t)
	if err := g.Place(3, 3, grid.BuildingCommercial); err != nil {
		t.Fatalf("setup place: %v", err)
	}

	belt.Active = component.ToolBulldoze
	click(cur, 3, 3)
	NewBuildSystem().Update(w)

	tile, _ := g.At(3, 3)
	if tile.Building != grid.BuildingNone {
		t.Fatalf("building after bulldoze = %v, want none", tile.Building)
	}
	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Type != component.EventBuildingRemoved {
		t.Fatalf("events = %v, want one removed event", evts)
	}
	data, ok := evts[0].Data.(component.BuildingRemoved)
	if !ok || data.X != 3 || data.Y != 3 || data.Building != grid.BuildingCommercial {
		t.Fatalf("removed payload = %+v", evts[0].Data)
	}
}

func TestToolBuildingMapping(t *testing.T) {
	cases := []struct {
		tool      component.Tool
		want      grid.BuildingType
		buildable bool
	}{
		{component.ToolInspect, grid.BuildingNone, false},
		{component.ToolRoad, grid.BuildingRoad, true},
		{component.ToolResidential, grid.BuildingResidential, true},
		{component.ToolCommercial, grid.BuildingCommercial, true},
		{component.ToolIndustrial, grid.BuildingIndustrial, true},
		{component.ToolPark, grid.BuildingPark, true},
		{component.ToolBulldoze, grid.BuildingNone, false},
	}

	for _, c := range cases {
		t.Run(c.tool.String(), func(t *testing.T) {
			got, ok := c.tool.Building()
			if ok != c.buildable {
				t.Fatalf("Building() ok = %v, want %v", ok, c.buildable)
			}
			if ok && got != c.want {
				t.Fatalf("Building() = %v, want %v", got, c.want)
			}
		})
	}
}
