package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/gateway"
)

// Schedule creates a new alarm from the given fields; the rest take defaults.
func Schedule(params alarm.Params) Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		a := alarm.New(params)
		if err := a.Validate(); err != nil {
			return err
		}

		if err := g.ScheduleAlarm(ctx, alarm.Normalized(a)); err != nil {
			return fmt.Errorf("schedule alarm: %w", err)
		}

		return printAlarm(out, a, time.Now())
	}
}

// Update changes the given fields of an existing alarm and keeps the others.
func Update(uid string, params alarm.Params) Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		current, err := g.GetAlarm(ctx, uid)
		if err != nil {
			return fmt.Errorf("get alarm: %w", err)
		}

		merged := alarm.Params(current.ToRecord())
		maps.Copy(merged, params)
		merged[alarm.KeyUID] = uid

		a := alarm.New(merged)
		if err = a.Validate(); err != nil {
			return err
		}

		if err = g.UpdateAlarm(ctx, alarm.Normalized(a)); err != nil {
			return fmt.Errorf("update alarm: %w", err)
		}

		return printAlarm(out, a, time.Now())
	}
}

// Enable switches an alarm on.
func Enable(uid string) Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		if err := g.EnableAlarm(ctx, uid); err != nil {
			return fmt.Errorf("enable alarm: %w", err)
		}

		return printDone(out, "enabled", uid)
	}
}

// Disable switches an alarm off.
func Disable(uid string) Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		if err := g.DisableAlarm(ctx, uid); err != nil {
			return fmt.Errorf("disable alarm: %w", err)
		}

		return printDone(out, "disabled", uid)
	}
}

// Remove deletes one alarm.
func Remove(uid string) Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		if err := g.RemoveAlarm(ctx, uid); err != nil {
			return fmt.Errorf("remove alarm: %w", err)
		}

		return printDone(out, "removed", uid)
	}
}

// RemoveAll deletes every alarm.
func RemoveAll() Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		if err := g.RemoveAllAlarms(ctx); err != nil {
			return fmt.Errorf("remove all alarms: %w", err)
		}

		return printDone(out, "removed", "all alarms")
	}
}

// Stop stops the ringing alarm.
func Stop() Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		if err := g.StopAlarm(ctx); err != nil {
			return fmt.Errorf("stop alarm: %w", err)
		}

		return printDone(out, "stopped", "ringing alarm")
	}
}

// Snooze snoozes the ringing alarm.
func Snooze() Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		if err := g.SnoozeAlarm(ctx); err != nil {
			return fmt.Errorf("snooze alarm: %w", err)
		}

		return printDone(out, "snoozed", "ringing alarm")
	}
}

// List prints every alarm.
func List() Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		alarms, err := g.GetAllAlarms(ctx)
		if err != nil {
			return fmt.Errorf("list alarms: %w", err)
		}

		if len(alarms) == 0 {
			_, err = fmt.Fprintln(out, "no alarms")

			return err
		}

		now := time.Now()
		for _, a := range alarms {
			if err = printAlarm(out, a, now); err != nil {
				return err
			}
		}

		return nil
	}
}

// Get prints one alarm.
func Get(uid string) Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		a, err := g.GetAlarm(ctx, uid)
		if err != nil {
			return fmt.Errorf("get alarm: %w", err)
		}

		return printAlarm(out, a, time.Now())
	}
}

// State prints the service state as indented JSON.
func State() Action {
	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		state, err := g.GetAlarmState(ctx)
		if err != nil {
			return fmt.Errorf("get alarm state: %w", err)
		}

		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("encode alarm state: %w", err)
		}

		_, err = fmt.Fprintln(out, string(data))

		return err
	}
}
