package alarm

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var (
	// ErrHourOutOfRange is reported for hours outside [0,23].
	ErrHourOutOfRange = errors.New("hour out of range")
	// ErrMinutesOutOfRange is reported for minutes outside [0,59].
	ErrMinutesOutOfRange = errors.New("minutes out of range")
	// ErrDayOutOfRange is reported for weekdays outside [0,6].
	ErrDayOutOfRange = errors.New("day out of range")
	// ErrNegativeSnooze is reported for a negative snooze interval.
	ErrNegativeSnooze = errors.New("snooze interval is negative")
)

// Validate reports every field that is out of its documented range.
// New does not call it: the default minutes can legitimately reach 60.
func (a *Alarm) Validate() error {
	var errs []error

	if a.Hour < 0 || a.Hour > 23 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrHourOutOfRange, a.Hour))
	}

	if a.Minutes < 0 || a.Minutes > 59 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrMinutesOutOfRange, a.Minutes))
	}

	for _, day := range a.Days {
		if day < 0 || day > 6 {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDayOutOfRange, day))
		}
	}

	if a.SnoozeInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrNegativeSnooze, a.SnoozeInterval))
	}

	return errors.Join(errs...)
}

// appWeekdays is indexed by the in-app day convention.
//
//nolint:gochecknoglobals // Fixed lookup table.
var appWeekdays = [...]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// NextOccurrence returns the first ring time strictly after the given moment,
// in after's location. It reports false for disabled alarms, alarms without
// days and alarms whose fields are out of range.
func (a *Alarm) NextOccurrence(after time.Time) (time.Time, bool) {
	if !a.Enabled || len(a.Days) == 0 || a.Validate() != nil {
		return time.Time{}, false
	}

	weekdays := make([]rrule.Weekday, 0, len(a.Days))
	for _, day := range a.Days {
		weekdays = append(weekdays, appWeekdays[day])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   after.Truncate(time.Minute),
		Byweekday: weekdays,
		Byhour:    []int{a.Hour},
		Byminute:  []int{a.Minutes},
		Bysecond:  []int{0},
	})
	if err != nil {
		return time.Time{}, false
	}

	next := rule.After(after, false)
	if next.IsZero() {
		return time.Time{}, false
	}

	return next, true
}
