package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/client"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the address from the configuration file.
	serverAddress string

	// rootCmd represents the base command for managing alarms.
	rootCmd = &cobra.Command{
		Use:   "alarmctl",
		Short: "Manage alarms on the alarm service.",
		Long: `Schedules, lists and controls alarms on the alarm service.

Every subcommand connects to the server named in the configuration file (or --server),
runs one operation and prints the result. Days are given and shown Monday first.`,
		SilenceUsage: true,
	}
)

// Execute runs the alarmctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.Long += "\n\n" + config.EnvHelp()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes an action with the shared connection settings.
func run(cmd *cobra.Command, action client.Action) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return client.Run(ctx, &client.Options{
		ConfigPath:    cfgPath,
		ServerAddress: serverAddress,
		Output:        cmd.OutOrStdout(),
	}, action)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "alarm server address (overrides config)")
}
