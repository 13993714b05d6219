package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/service/client"
)

// alarmFlags registers the alarm field flags shared by schedule and update.
func alarmFlags(flags *pflag.FlagSet) {
	flags.String("uid", "", "alarm identifier (generated when empty)")
	flags.String("title", alarm.DefaultTitle, "alarm title")
	flags.String("description", alarm.DefaultDescription, "alarm description")
	flags.Int("hour", 0, "ring hour, 0-23 (defaults to the current hour)")
	flags.Int("minutes", 0, "ring minute, 0-59 (defaults to the next minute)")
	flags.Int("snooze", alarm.DefaultSnoozeInterval, "snooze interval in minutes")
	flags.Bool("repeating", false, "ring every week")
	flags.Bool("enabled", true, "switch the alarm on")
	flags.Bool("active", true, "arm the alarm")
	flags.StringSlice("days", nil, "ring days, e.g. mon,wed,fri (defaults to today)")
}

// paramsFromFlags collects only the flags the user set, so the rest take defaults.
func paramsFromFlags(flags *pflag.FlagSet) (alarm.Params, error) {
	params := make(alarm.Params)

	var err error

	flags.Visit(func(flag *pflag.Flag) {
		if err != nil {
			return
		}

		switch flag.Name {
		case "uid":
			params[alarm.KeyUID], err = flags.GetString(flag.Name)
		case "title":
			params[alarm.KeyTitle], err = flags.GetString(flag.Name)
		case "description":
			params[alarm.KeyDescription], err = flags.GetString(flag.Name)
		case "hour":
			params[alarm.KeyHour], err = flags.GetInt(flag.Name)
		case "minutes":
			params[alarm.KeyMinutes], err = flags.GetInt(flag.Name)
		case "snooze":
			params[alarm.KeySnoozeInterval], err = flags.GetInt(flag.Name)
		case "repeating":
			params[alarm.KeyRepeating], err = flags.GetBool(flag.Name)
		case "enabled":
			params[alarm.KeyEnabled], err = flags.GetBool(flag.Name)
		case "active":
			params[alarm.KeyActive], err = flags.GetBool(flag.Name)
		case "days":
			var names []string

			if names, err = flags.GetStringSlice(flag.Name); err == nil {
				params[alarm.KeyDays], err = client.ParseDays(names)
			}
		}
	})

	if err != nil {
		return nil, err
	}

	return params, nil
}

// uidCommand builds a subcommand that takes exactly one alarm uid.
func uidCommand(use, short string, action func(uid string) client.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <uid>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, action(args[0]))
		},
	}
}

// bareCommand builds a subcommand without arguments.
func bareCommand(use, short string, action func() client.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, action())
		},
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a new alarm.",
		Long: `Schedules a new alarm. Fields that are not given take their defaults:
title "Alarm", description "Wake up", the current hour, the next minute, today,
enabled, active, not repeating, one minute snooze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := paramsFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return run(cmd, client.Schedule(params))
		},
	}
	alarmFlags(scheduleCmd.Flags())

	updateCmd := &cobra.Command{
		Use:   "update <uid>",
		Short: "Change fields of an existing alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := paramsFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return run(cmd, client.Update(args[0], params))
		},
	}
	alarmFlags(updateCmd.Flags())

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the alarm service state whenever it changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interval, err := cmd.Flags().GetDuration("interval")
			if err != nil {
				return err
			}

			return run(cmd, client.Watch(interval))
		},
	}
	watchCmd.Flags().Duration("interval", client.DefaultPollInterval, "polling interval")

	rootCmd.AddCommand(
		scheduleCmd,
		watchCmd,
		updateCmd,
		uidCommand("enable", "Switch an alarm on.", client.Enable),
		uidCommand("disable", "Switch an alarm off.", client.Disable),
		uidCommand("remove", "Delete an alarm.", client.Remove),
		uidCommand("get", "Show one alarm.", client.Get),
		bareCommand("remove-all", "Delete every alarm.", client.RemoveAll),
		bareCommand("stop", "Stop the ringing alarm.", client.Stop),
		bareCommand("snooze", "Snooze the ringing alarm.", client.Snooze),
		bareCommand("list", "List all alarms.", client.List),
		bareCommand("state", "Show the alarm service state.", client.State),
	)
}
