package component

// RiderPhase is the rider's travel state.
type RiderPhase uint8

const (
	// RiderRunning advances progress every tick.
	RiderRunning RiderPhase = iota
	// RiderPaused waits at a checkpoint for the continue signal.
	RiderPaused
	// RiderFinished sits frozen on the final route cell.
	RiderFinished
)

func (p RiderPhase) String() string {
	switch p {
	case RiderRunning:
		return "running"
	case RiderPaused:
		return "paused"
	case RiderFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Rider is the scripted cyclist following the fixed route.
//
// Progress is a scalar in [0, len(route)-1]; its floored value is the index
// of the cell the rider last passed. LastCheckpoint guards re-triggering: a
// checkpoint fires at most once per visit to its index.
type Rider struct {
	Progress float64
	Speed    float64 // cells per second
	Phase    RiderPhase

	LastCheckpoint int // route index of the last fired checkpoint, -1 when none

	// External signals, consumed by the path-follow system next tick.
	ResumeRequested bool
	ResetRequested  bool

	// Fractional grid position, kept for depth sorting.
	GridX float64
	GridY float64
}

var RiderComponent = NewComponent[Rider]()
