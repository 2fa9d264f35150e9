package store

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

const epsilon = time.Millisecond

// now returns an epsilon-wide span bracketing the current instant. Wall
// clocks are not precise enough to pin a transition to a single point, so a
// Change carries the interval it certainly happened within.
func now() timespan.TimeSpan {
	t := time.Now()
	return timespan.BetweenTimes(t.Add(-1*epsilon), t.Add(epsilon))
}
