package alarm

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Record keys shared by Params and Record.
const (
	KeyUID            = "uid"
	KeyEnabled        = "enabled"
	KeyTitle          = "title"
	KeyDescription    = "description"
	KeyHour           = "hour"
	KeyMinutes        = "minutes"
	KeySnoozeInterval = "snoozeInterval"
	KeyRepeating      = "repeating"
	KeyActive         = "active"
	KeyDays           = "days"
)

const (
	// DefaultTitle is used when no title is supplied.
	DefaultTitle = "Alarm"
	// DefaultDescription is used when no description is supplied.
	DefaultDescription = "Wake up"
	// DefaultSnoozeInterval is the snooze length in minutes.
	DefaultSnoozeInterval = 1
)

// Alarm is one scheduled wake or reminder event.
// Days use the in-app convention: 0 is Monday, 6 is Sunday.
type Alarm struct {
	// UID identifies the alarm at the alarm service.
	UID string `json:"uid"`
	// Enabled reports whether the alarm is switched on.
	Enabled bool `json:"enabled"`
	// Title is the short label shown when the alarm rings.
	Title string `json:"title"`
	// Description is the longer text shown when the alarm rings.
	Description string `json:"description"`
	// Hour is the ring hour, 0-23.
	Hour int `json:"hour"`
	// Minutes is the ring minute, 0-59.
	Minutes int `json:"minutes"`
	// SnoozeInterval is the snooze length in minutes.
	SnoozeInterval int `json:"snoozeInterval"`
	// Repeating reports whether the alarm rings every week.
	Repeating bool `json:"repeating"`
	// Active reports whether the alarm is armed at the service.
	Active bool `json:"active"`
	// Days lists the ring weekdays. Duplicates are kept as given.
	Days []int `json:"days"`
}

// Params is a partial alarm configuration. Missing keys take defaults.
type Params map[string]any

// New builds an Alarm from a partial configuration.
// Fields that are absent, nil, unreadable or of an unusable type take their
// defaults; New never fails and never panics.
func New(params any) *Alarm {
	return newAt(params, time.Now())
}

// newAt is New with an explicit current moment for the time-based defaults.
func newAt(params any, now time.Time) *Alarm {
	return &Alarm{
		UID:            stringField(params, KeyUID, uuid.NewString),
		Enabled:        boolField(params, KeyEnabled, true),
		Title:          stringField(params, KeyTitle, constant(DefaultTitle)),
		Description:    stringField(params, KeyDescription, constant(DefaultDescription)),
		Hour:           intField(params, KeyHour, now.Hour()),
		Minutes:        intField(params, KeyMinutes, now.Minute()+1),
		SnoozeInterval: intField(params, KeySnoozeInterval, DefaultSnoozeInterval),
		Repeating:      boolField(params, KeyRepeating, false),
		Active:         boolField(params, KeyActive, true),
		Days:           daysField(params, KeyDays, []int{AppDay(now.Weekday())}),
	}
}

// Empty returns the template used for a new, not yet configured alarm.
func Empty() *Alarm {
	return New(Params{
		KeyTitle:       "",
		KeyDescription: "",
		KeyHour:        0,
		KeyMinutes:     0,
		KeyRepeating:   false,
		KeyDays:        []int{},
	})
}

// Clone returns a deep copy of the alarm.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.Days = slices.Clone(a.Days)

	return &cloned
}

// String renders the alarm for logs.
func (a *Alarm) String() string {
	ts := a.TimeString()

	return fmt.Sprintf("%s %s:%s", a.Title, ts.Hour, ts.Minutes)
}

// TimeString holds the zero-padded hour and minutes of an alarm.
type TimeString struct {
	Hour    string
	Minutes string
}

// TimeString formats hour and minutes as two-digit strings.
// Out-of-range values are formatted as they are.
func (a *Alarm) TimeString() TimeString {
	return TimeString{
		Hour:    fmt.Sprintf("%02d", a.Hour),
		Minutes: fmt.Sprintf("%02d", a.Minutes),
	}
}

// Time returns today at the alarm's hour and minutes in the local time zone.
// Only hour and minutes are authoritative; seconds and below are taken from
// the current moment.
func (a *Alarm) Time() time.Time {
	return a.timeAt(time.Now())
}

func (a *Alarm) timeAt(now time.Time) time.Time {
	year, month, day := now.Date()

	return time.Date(year, month, day, a.Hour, a.Minutes, now.Second(), now.Nanosecond(), now.Location())
}

func constant(s string) func() string {
	return func() string { return s }
}
