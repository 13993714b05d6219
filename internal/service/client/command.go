package client

import (
	"context"
	"io"
	"os"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/gateway"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Options configures how alarmctl reaches the alarm server.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Output receives the action's output, defaults to stdout.
	Output io.Writer
}

// Action is one alarmctl operation executed through the gateway.
type Action func(ctx context.Context, g *gateway.Gateway, out io.Writer) error

// Run connects to the alarm server and executes the action.
func Run(ctx context.Context, opts *Options, action Action) error {
	ctx = logger.WithName(ctx, "alarmctl")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	cfg.ApplyLogLevel()

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for the server's audit log.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout), common.WithActor(actor))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected to alarm server", "server_address", serverAddress)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return action(ctx, gateway.New(client), out)
}
