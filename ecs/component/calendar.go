package component

// Calendar is the fixed-interval day counter.
type Calendar struct {
	Day         int
	Ticks       int
	TicksPerDay int
}

var CalendarComponent = NewComponent[Calendar]()
