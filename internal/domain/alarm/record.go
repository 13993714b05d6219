package alarm

import (
	"maps"
	"slices"
	"time"

	"github.com/spf13/cast"
)

// Record is the plain form of an alarm exchanged with the alarm service.
// Records produced by ToService carry days in the service convention.
type Record map[string]any

// UID returns the record's identifier, or "" when it has none.
func (r Record) UID() string {
	uid, _ := lookup(r, KeyUID)

	return cast.ToString(uid)
}

// ToRecord returns the alarm fields as a record in the in-app day convention.
func (a *Alarm) ToRecord() Record {
	return Record{
		KeyUID:            a.UID,
		KeyEnabled:        a.Enabled,
		KeyTitle:          a.Title,
		KeyDescription:    a.Description,
		KeyHour:           a.Hour,
		KeyMinutes:        a.Minutes,
		KeySnoozeInterval: a.SnoozeInterval,
		KeyRepeating:      a.Repeating,
		KeyActive:         a.Active,
		KeyDays:           slices.Clone(a.Days),
	}
}

// ToService returns the record sent to the alarm service.
// It equals ToRecord except that days are in the service convention.
func (a *Alarm) ToService() Record {
	record := a.ToRecord()
	record[KeyDays] = ToServiceDays(a.Days)

	return record
}

// FromService builds an Alarm from a record read back from the alarm service.
// The input record is left untouched.
func FromService(raw Record) *Alarm {
	return fromServiceAt(raw, time.Now())
}

func fromServiceAt(raw Record, now time.Time) *Alarm {
	converted := maps.Clone(raw)

	if v, ok := lookup(raw, KeyDays); ok {
		if days, err := cast.ToIntSliceE(v); err == nil {
			converted[KeyDays] = FromServiceDays(days)
		} else {
			delete(converted, KeyDays)
		}
	}

	return newAt(converted, now)
}

// ToServiceDays maps in-app weekdays (Monday first) to service weekdays
// (Sunday first).
func ToServiceDays(days []int) []int {
	if days == nil {
		return nil
	}

	result := make([]int, len(days))
	for i, day := range days {
		result[i] = (day + 1) % 7
	}

	return result
}

// FromServiceDays maps service weekdays (Sunday first) to in-app weekdays
// (Monday first). It is the inverse of ToServiceDays on [0,6].
func FromServiceDays(days []int) []int {
	if days == nil {
		return nil
	}

	result := make([]int, len(days))
	for i, day := range days {
		if day == 0 {
			result[i] = 6
		} else {
			result[i] = day - 1
		}
	}

	return result
}

// AppDay converts a time.Weekday to the in-app convention.
func AppDay(day time.Weekday) int {
	return (int(day) + 6) % 7
}
