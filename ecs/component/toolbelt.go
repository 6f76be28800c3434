package component

import "github.com/milk9111/cityfolio/grid"

// Tool is a toolbar selection.
type Tool uint8

const (
	ToolInspect Tool = iota
	ToolRoad
	ToolResidential
	ToolCommercial
	ToolIndustrial
	ToolPark
	ToolBulldoze

	ToolCount
)

func (t Tool) String() string {
	switch t {
	case ToolInspect:
		return "Inspect"
	case ToolRoad:
		return "Road"
	case ToolResidential:
		return "Homes"
	case ToolCommercial:
		return "Shops"
	case ToolIndustrial:
		return "Works"
	case ToolPark:
		return "Park"
	case ToolBulldoze:
		return "Bulldoze"
	default:
		return "?"
	}
}

// Building returns the building type a tool places, or false for tools that
// don't place anything.
func (t Tool) Building() (grid.BuildingType, bool) {
	switch t {
	case ToolRoad:
		return grid.BuildingRoad, true
	case ToolResidential:
		return grid.BuildingResidential, true
	case ToolCommercial:
		return grid.BuildingCommercial, true
	case ToolIndustrial:
		return grid.BuildingIndustrial, true
	case ToolPark:
		return grid.BuildingPark, true
	default:
		return grid.BuildingNone, false
	}
}

// Toolbelt is the active toolbar selection.
type Toolbelt struct {
	Active Tool
}

var ToolbeltComponent = NewComponent[Toolbelt]()
