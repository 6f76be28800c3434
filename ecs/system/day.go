package system

import (
	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
)

// DaySystem is the fixed-interval day counter.
type DaySystem struct{}

func NewDaySystem() *DaySystem {
	return &DaySystem{}
}

func (d *DaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.CalendarComponent, func(_ ecs.Entity, cal *component.Calendar) {
		if cal.TicksPerDay <= 0 {
			return
		}
		cal.Ticks++
		if cal.Ticks < cal.TicksPerDay {
			return
		}
		cal.Ticks = 0
		cal.Day++
		w.Events().Push(ecs.Event{Type: component.EventDayAdvanced, Data: component.DayAdvanced{Day: cal.Day}})
	})
}
