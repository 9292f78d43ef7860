package request

import (
	"time"

	"coach-booking-engine/internal/pkg/errs"
)

var (
	ErrInvalidWindow   = errs.New("start time must be before end time")
	ErrWindowInPast    = errs.New("proposed window cannot be in the past")
	ErrUnknownTimezone = errs.New("unknown timezone")
)

// TimeWindow is the proposed session slot together with the timezone the
// requester expressed it in.
type TimeWindow struct {
	start    time.Time
	end      time.Time
	timezone string
}

func NewTimeWindow(start, end time.Time, timezone string, now time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidWindow
	}
	if start.Before(now) {
		return TimeWindow{}, ErrWindowInPast
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return TimeWindow{}, ErrUnknownTimezone
	}

	return TimeWindow{start: start, end: end, timezone: timezone}, nil
}

// ReconstructTimeWindow rebuilds a persisted window without re-validating
// against the current time.
func ReconstructTimeWindow(start, end time.Time, timezone string) TimeWindow {
	return TimeWindow{start: start, end: end, timezone: timezone}
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Timezone() string {
	return w.timezone
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}
