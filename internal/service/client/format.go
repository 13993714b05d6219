package client

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// dayNames is indexed by the in-app day convention.
//
//nolint:gochecknoglobals // Fixed lookup table.
var dayNames = [...]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var errUnknownDay = errors.New("unknown day")

// ParseDays converts day names (mon..sun, or their full English names) into
// in-app day indices. Duplicates are kept.
func ParseDays(names []string) ([]int, error) {
	days := make([]int, 0, len(names))

	for _, name := range names {
		day, err := parseDay(name)
		if err != nil {
			return nil, err
		}

		days = append(days, day)
	}

	return days, nil
}

func parseDay(name string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if len(normalized) >= 3 {
		for i, short := range dayNames {
			if strings.HasPrefix(normalized, short) {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", errUnknownDay, name)
}

// FormatDays renders in-app day indices as short names.
func FormatDays(days []int) string {
	if len(days) == 0 {
		return "-"
	}

	names := make([]string, 0, len(days))

	for _, day := range days {
		if day >= 0 && day < len(dayNames) {
			names = append(names, dayNames[day])
		} else {
			names = append(names, fmt.Sprintf("?%d", day))
		}
	}

	return strings.Join(names, ",")
}

// printAlarm writes one alarm line.
func printAlarm(out io.Writer, a *alarm.Alarm, now time.Time) error {
	ts := a.TimeString()

	status := color.GreenString("on ")
	if !a.Enabled {
		status = color.RedString("off")
	}

	repeat := "once"
	if a.Repeating {
		repeat = "weekly"
	}

	next := "-"
	if at, ok := a.NextOccurrence(now); ok {
		next = at.Format("Mon 2006-01-02 15:04")
	}

	_, err := fmt.Fprintf(
		out,
		"%s %s %s:%s %-6s %-28s %q next: %s snooze: %dm\n",
		status,
		color.CyanString(a.UID),
		ts.Hour,
		ts.Minutes,
		repeat,
		FormatDays(a.Days),
		a.Title,
		next,
		a.SnoozeInterval,
	)

	return err
}

// printDone writes a confirmation line.
func printDone(out io.Writer, verb, subject string) error {
	_, err := fmt.Fprintf(out, "%s %s\n", color.YellowString(verb), subject)

	return err
}
