package system

import (
	"github.com/milk9111/cityfolio/common"
	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
)

// PathFollowSystem advances every rider along the city route and runs the
// checkpoint gate: Running → Paused on an untriggered checkpoint index,
// Paused → Running on the continue signal, Running → Finished at the final
// cell, and any phase → Running on reset.
type PathFollowSystem struct {
	tps float64
}

// NewPathFollowSystem creates the system for a fixed tick rate.
func NewPathFollowSystem(tps float64) *PathFollowSystem {
	if tps <= 0 {
		tps = 60
	}
	return &PathFollowSystem{tps: tps}
}

func (s *PathFollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, city, ok := ecs.First(w, component.CityComponent)
	if !ok || len(city.Route) < 2 {
		return
	}
	last := len(city.Route) - 1
	dt := 1 / s.tps

	ecs.ForEach2(w, component.RiderComponent, component.TransformComponent,
		func(e ecs.Entity, r *component.Rider, t *component.Transform) {
			if r.ResetRequested {
				r.ResetRequested = false
				r.ResumeRequested = false
				r.Progress = 0
				r.LastCheckpoint = -1
				r.Phase = component.RiderRunning
				w.Events().Push(ecs.Event{Type: component.EventTourReset, Data: component.TourReset{}})
			}

			if r.ResumeRequested {
				r.ResumeRequested = false
				if r.Phase == component.RiderPaused {
					r.Phase = component.RiderRunning
				}
			}

			if r.Phase == component.RiderRunning {
				r.Progress = common.Clamp(r.Progress+r.Speed*dt, 0, float64(last))

				if r.Progress >= float64(last) {
					r.Phase = component.RiderFinished
					w.Events().Push(ecs.Event{Type: component.EventTourFinished, Data: component.TourFinished{}})
				} else if idx := int(r.Progress); idx != r.LastCheckpoint {
					if ord := city.CheckpointOrdinal(idx); ord >= 0 {
						r.Phase = component.RiderPaused
						r.LastCheckpoint = idx
						w.Events().Push(ecs.Event{
							Type: component.EventCheckpointReached,
							Data: component.CheckpointReached{RouteIndex: idx, Ordinal: ord},
						})
					}
				}
			}

			s.place(w, e, city, r, t, last)
		})
}

// place derives the rider's world position and facing from its progress:
// linear interpolation between the two route cells bracketing the floored
// index, projected to the screen.
func (s *PathFollowSystem) place(w *ecs.World, e ecs.Entity, city *component.City, r *component.Rider, t *component.Transform, last int) {
	idx := int(r.Progress)
	if idx > last {
		idx = last
	}
	next := min(idx+1, last)
	frac := r.Progress - float64(idx)

	a, b := city.Route[idx], city.Route[next]
	r.GridX = common.Lerp(float64(a.X), float64(b.X), frac)
	r.GridY = common.Lerp(float64(a.Y), float64(b.Y), frac)
	t.X, t.Y = city.Proj.Project(r.GridX, r.GridY)

	if sp, ok := ecs.Get(w, e, component.SpriteComponent); ok && next != idx {
		// In the iso view, -x and +y travel both move the rider left.
		sp.FlipX = b.X < a.X || b.Y > a.Y
	}
}
