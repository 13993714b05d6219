package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/oshokin/alarm-clock/internal/gateway"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// DefaultPollInterval is the interval between state checks in Watch.
const DefaultPollInterval = 5 * time.Second

// Watch polls the service state and prints it whenever it changes, until the
// context is canceled. Failed polls are logged and retried on the next tick.
func Watch(interval time.Duration) Action {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return func(ctx context.Context, g *gateway.Gateway, out io.Writer) error {
		logger.InfoKV(ctx, "Polling alarm state", "interval", interval.String())

		var (
			last  any
			first = true
		)

		check := func() error {
			state, err := g.GetAlarmState(ctx)
			if err != nil {
				logger.ErrorKV(ctx, "Check state failed", "error", err)

				return nil
			}

			if !first && reflect.DeepEqual(state, last) {
				return nil
			}

			first, last = false, state

			data, err := json.Marshal(state)
			if err != nil {
				return fmt.Errorf("encode alarm state: %w", err)
			}

			_, err = fmt.Fprintf(out, "%s %s\n", time.Now().Format(time.RFC3339), data)

			return err
		}

		if err := check(); err != nil {
			return err
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info(ctx, "Context canceled, exiting")

				return nil
			case <-ticker.C:
				if err := check(); err != nil {
					return err
				}
			}
		}
	}
}
