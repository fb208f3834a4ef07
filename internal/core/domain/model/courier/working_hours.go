package courier

import (
	"fmt"
	"time"

	"kurye/internal/pkg/errs"
	"kurye/internal/pkg/guard"
)

// ErrWorkingHoursAreNotConstructed indicates that a WorkingHours value was
// not created through NewWorkingHours.
var ErrWorkingHoursAreNotConstructed = errs.NewValueIsRequiredError("WorkingHours must be created via NewWorkingHours")

// WorkingHours is a daily shift window expressed in minutes of day.
// A window whose end is before its start wraps past midnight, so a
// night shift of 22:00-06:00 is valid and contains 02:30.
//
// WorkingHours is immutable. The zero value is invalid.
type WorkingHours struct {
	startMinute int
	endMinute   int

	guard guard.ConstructorGuard
}

// NewWorkingHours creates a shift window from start and end clock times
// given as hours and minutes. Start and end equal means a full-day shift.
func NewWorkingHours(startHour, startMinute, endHour, endMinute int) (WorkingHours, error) {
	start, err := minuteOfDay("start", startHour, startMinute)
	if err != nil {
		return WorkingHours{}, err
	}
	end, err := minuteOfDay("end", endHour, endMinute)
	if err != nil {
		return WorkingHours{}, err
	}

	return WorkingHours{
		startMinute: start,
		endMinute:   end,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func minuteOfDay(param string, hour, minute int) (int, error) {
	if hour < 0 || hour > 23 {
		return 0, errs.NewValueIsOutOfRangeError(param+" hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.NewValueIsOutOfRangeError(param+" minute", minute, 0, 59)
	}
	return hour*60 + minute, nil
}

// StartMinute returns the shift start as minutes after midnight.
func (w WorkingHours) StartMinute() int {
	return w.startMinute
}

// EndMinute returns the shift end as minutes after midnight.
func (w WorkingHours) EndMinute() int {
	return w.endMinute
}

// Contains reports whether the local clock time of t falls inside the
// shift window. The start is inclusive and the end exclusive, except
// for a full-day shift (start == end) which contains every time.
func (w WorkingHours) Contains(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()

	if w.startMinute == w.endMinute {
		return true
	}
	if w.startMinute < w.endMinute {
		return minute >= w.startMinute && minute < w.endMinute
	}
	// Window wraps past midnight.
	return minute >= w.startMinute || minute < w.endMinute
}

// String renders the window as "HH:MM-HH:MM".
func (w WorkingHours) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		w.startMinute/60, w.startMinute%60,
		w.endMinute/60, w.endMinute%60,
	)
}

// Validate checks that the WorkingHours value was properly constructed.
func (w WorkingHours) Validate() error {
	return w.guard.Validate(ErrWorkingHoursAreNotConstructed)
}
