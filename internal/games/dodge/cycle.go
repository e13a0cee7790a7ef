package dodge

import "time"

// DotEvent is a scheduled change to the collectible.
type DotEvent int

const (
	DotShow DotEvent = iota // relocate and make visible
	DotHide                 // make invisible
)

// String returns a human-readable name for the event.
func (e DotEvent) String() string {
	switch e {
	case DotShow:
		return "show"
	case DotHide:
		return "hide"
	default:
		return "unknown"
	}
}

// DotCycle schedules the collectible on wall-clock time: a show every period
// starting one period after start, and a hide visibleFor after each show.
// It never stops, including while the game is paused or over.
//
// visibleFor must be shorter than period, so a pending hide always precedes
// the next show.
type DotCycle struct {
	period     time.Duration
	visibleFor time.Duration
	nextShow   time.Time
	hideAt     time.Time // zero when no hide is pending
}

// NewDotCycle creates a cycle whose first show is at start+period.
func NewDotCycle(start time.Time, period, visibleFor time.Duration) *DotCycle {
	return &DotCycle{
		period:     period,
		visibleFor: visibleFor,
		nextShow:   start.Add(period),
	}
}

// Due returns every event scheduled at or before now, oldest first, and
// removes them from the schedule. Events missed while nobody polled are
// replayed in order.
func (c *DotCycle) Due(now time.Time) []DotEvent {
	var events []DotEvent
	for {
		switch {
		case !c.hideAt.IsZero() && !c.hideAt.After(now):
			events = append(events, DotHide)
			c.hideAt = time.Time{}
		case c.period > 0 && !c.nextShow.After(now):
			events = append(events, DotShow)
			c.hideAt = c.nextShow.Add(c.visibleFor)
			c.nextShow = c.nextShow.Add(c.period)
		default:
			return events
		}
	}
}

// NextShow returns when the collectible will next appear.
func (c *DotCycle) NextShow() time.Time {
	return c.nextShow
}
