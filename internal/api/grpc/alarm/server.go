package alarm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/alarm-clock/internal/gateway"
)

var _ ModuleServer = (*Server)(nil)

// Server implements the AlarmModule gRPC API.
type Server struct {
	// service provides the alarm operations.
	service gateway.Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service gateway.Service) *Server {
	return &Server{
		service: service,
	}
}

// Set schedules a new alarm.
func (s *Server) Set(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "record is required")
	}

	return empty(s.service.Set(ctx, FromProtoRecord(req)))
}

// Enable switches an alarm on.
func (s *Server) Enable(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "uid is required")
	}

	return empty(s.service.Enable(ctx, req.GetValue()))
}

// Disable switches an alarm off.
func (s *Server) Disable(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "uid is required")
	}

	return empty(s.service.Disable(ctx, req.GetValue()))
}

// Update replaces an existing alarm.
func (s *Server) Update(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "record is required")
	}

	return empty(s.service.Update(ctx, FromProtoRecord(req)))
}

// Remove deletes one alarm.
func (s *Server) Remove(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "uid is required")
	}

	return empty(s.service.Remove(ctx, req.GetValue()))
}

// RemoveAll deletes every alarm.
func (s *Server) RemoveAll(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.service.RemoveAll(ctx))
}

// Stop stops the ringing alarm.
func (s *Server) Stop(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.service.Stop(ctx))
}

// Snooze snoozes the ringing alarm.
func (s *Server) Snooze(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return empty(s.service.Snooze(ctx))
}

// GetAll lists every alarm.
func (s *Server) GetAll(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	records, err := s.service.GetAll(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := ToProtoRecords(records)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return result, nil
}

// Get returns one alarm.
func (s *Server) Get(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "uid is required")
	}

	record, err := s.service.Get(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := ToProtoRecord(record)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return result, nil
}

// GetState returns the opaque service state.
func (s *Server) GetState(ctx context.Context, _ *emptypb.Empty) (*structpb.Value, error) {
	state, err := s.service.GetState(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := ToProtoState(state)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return result, nil
}

// empty converts a write result into the RPC response.
func empty(err error) (*emptypb.Empty, error) {
	if err != nil {
		return nil, toStatus(err)
	}

	return new(emptypb.Empty), nil
}

// toStatus maps service errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, gateway.ErrAlarmNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, gateway.ErrInvalidAlarm):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// FromStatus maps a gRPC status error back onto the service errors.
// Errors without a known mapping are returned unchanged.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %w", gateway.ErrAlarmNotFound, err)
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %w", gateway.ErrInvalidAlarm, err)
	default:
		return err
	}
}
