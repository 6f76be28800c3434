package component

import "github.com/milk9111/cityfolio/grid"

// World event types pushed by systems and drained by the game loop.
const (
	EventCheckpointReached = "checkpoint_reached"
	EventTourFinished      = "tour_finished"
	EventTourReset         = "tour_reset"
	EventDayAdvanced       = "day_advanced"
	EventBuildingPlaced    = "building_placed"
	EventBuildingRemoved   = "building_removed"
)

// CheckpointReached fires once when the rider pauses at a checkpoint.
type CheckpointReached struct {
	RouteIndex int
	Ordinal    int
}

// TourFinished fires once when the rider reaches the final route cell.
type TourFinished struct{}

// TourReset fires when a restart signal rewinds the rider.
type TourReset struct{}

// DayAdvanced fires each time the day counter rolls over.
type DayAdvanced struct {
	Day int
}

// BuildingPlaced fires after a successful placement.
type BuildingPlaced struct {
	X        int
	Y        int
	Building grid.BuildingType
}

// BuildingRemoved fires after a successful bulldoze.
type BuildingRemoved struct {
	X        int
	Y        int
	Building grid.BuildingType
}
