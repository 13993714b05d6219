package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/server"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// alarmsFile path where alarms are persisted.
	alarmsFile string
	// allowConcurrent skips the running-process check.
	allowConcurrent bool

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "alarm-server [listen-address]",
		Short: "Run the reference alarm service over gRPC.",
		Long: `Starts the gRPC alarm service that stores alarms and answers alarmctl requests.

The server keeps alarm records in the service day convention (Sunday first) and
persists them to a JSON file after every change. It does not ring alarms: stop
and snooze requests are only recorded in the reported state.

Only the port from the server address in the configuration is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:      configPath,
				ListenAddress:   listenAddress,
				AlarmsFile:      alarmsFile,
				AllowConcurrent: allowConcurrent,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.Long += "\n\n" + config.EnvHelp()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&alarmsFile, "alarms-file", "a", "", "path to persist alarms (overrides config)")
	rootCmd.Flags().BoolVar(&allowConcurrent, "allow-concurrent", false, "start even if another alarm-server is running")
}
