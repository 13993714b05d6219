//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/gateway"
	"github.com/oshokin/alarm-clock/internal/version"
)

var _ gateway.Service = (*Client)(nil)

// Client talks to the AlarmModule gRPC service and satisfies gateway.Service.
type Client struct {
	// conn is the underlying gRPC connection, nil when the client wraps a
	// caller-owned connection.
	conn *grpc.ClientConn
	// invoker issues unary calls.
	invoker grpc.ClientConnInterface

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// actor identifies this caller to the server, may be nil.
	actor *api.Actor
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor attaches the caller identity to every call.
func WithActor(actor *api.Actor) Option {
	return func(c *Client) {
		c.actor = actor
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the alarm server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent("alarmctl")),
	)
	if err != nil {
		return nil, fmt.Errorf("dial alarm server: %w", err)
	}

	client := NewClient(conn, opts...)
	client.conn = conn

	return client, nil
}

// NewClient wraps an existing connection. The caller keeps ownership of it.
func NewClient(conn grpc.ClientConnInterface, opts ...Option) *Client {
	client := &Client{
		invoker:     conn,
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Set schedules a new alarm.
func (c *Client) Set(ctx context.Context, record alarm.Record) error {
	return c.sendRecord(ctx, api.MethodSet, record)
}

// Update replaces an existing alarm.
func (c *Client) Update(ctx context.Context, record alarm.Record) error {
	return c.sendRecord(ctx, api.MethodUpdate, record)
}

// Enable switches an alarm on.
func (c *Client) Enable(ctx context.Context, uid string) error {
	return c.invoke(ctx, api.MethodEnable, wrapperspb.String(uid), new(emptypb.Empty))
}

// Disable switches an alarm off.
func (c *Client) Disable(ctx context.Context, uid string) error {
	return c.invoke(ctx, api.MethodDisable, wrapperspb.String(uid), new(emptypb.Empty))
}

// Remove deletes one alarm.
func (c *Client) Remove(ctx context.Context, uid string) error {
	return c.invoke(ctx, api.MethodRemove, wrapperspb.String(uid), new(emptypb.Empty))
}

// RemoveAll deletes every alarm.
func (c *Client) RemoveAll(ctx context.Context) error {
	return c.invoke(ctx, api.MethodRemoveAll, new(emptypb.Empty), new(emptypb.Empty))
}

// Stop stops the ringing alarm.
func (c *Client) Stop(ctx context.Context) error {
	return c.invoke(ctx, api.MethodStop, new(emptypb.Empty), new(emptypb.Empty))
}

// Snooze snoozes the ringing alarm.
func (c *Client) Snooze(ctx context.Context) error {
	return c.invoke(ctx, api.MethodSnooze, new(emptypb.Empty), new(emptypb.Empty))
}

// GetAll lists every alarm.
func (c *Client) GetAll(ctx context.Context) ([]alarm.Record, error) {
	response := new(structpb.ListValue)
	if err := c.invoke(ctx, api.MethodGetAll, new(emptypb.Empty), response); err != nil {
		return nil, err
	}

	return api.FromProtoRecords(response), nil
}

// Get returns one alarm.
func (c *Client) Get(ctx context.Context, uid string) (alarm.Record, error) {
	response := new(structpb.Struct)
	if err := c.invoke(ctx, api.MethodGet, wrapperspb.String(uid), response); err != nil {
		return nil, err
	}

	return api.FromProtoRecord(response), nil
}

// GetState returns the opaque service state.
func (c *Client) GetState(ctx context.Context) (any, error) {
	response := new(structpb.Value)
	if err := c.invoke(ctx, api.MethodGetState, new(emptypb.Empty), response); err != nil {
		return nil, err
	}

	return api.FromProtoState(response), nil
}

// sendRecord encodes and sends a record-carrying write.
func (c *Client) sendRecord(ctx context.Context, method string, record alarm.Record) error {
	request, err := api.ToProtoRecord(record)
	if err != nil {
		return err
	}

	return c.invoke(ctx, method, request, new(emptypb.Empty))
}

// invoke issues one unary call with the client's timeout and identity.
func (c *Client) invoke(ctx context.Context, method string, request, response proto.Message) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if err := c.invoker.Invoke(api.AppendActor(callCtx, c.actor), method, request, response); err != nil {
		return api.FromStatus(err)
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
