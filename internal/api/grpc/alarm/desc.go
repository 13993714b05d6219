package alarm

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "alarmclock.v1.AlarmModule"

// Full method names of the AlarmModule service.
const (
	MethodSet       = "/" + ServiceName + "/Set"
	MethodEnable    = "/" + ServiceName + "/Enable"
	MethodDisable   = "/" + ServiceName + "/Disable"
	MethodUpdate    = "/" + ServiceName + "/Update"
	MethodRemove    = "/" + ServiceName + "/Remove"
	MethodRemoveAll = "/" + ServiceName + "/RemoveAll"
	MethodStop      = "/" + ServiceName + "/Stop"
	MethodSnooze    = "/" + ServiceName + "/Snooze"
	MethodGetAll    = "/" + ServiceName + "/GetAll"
	MethodGet       = "/" + ServiceName + "/Get"
	MethodGetState  = "/" + ServiceName + "/GetState"
)

// ModuleServer is the server API of the AlarmModule service.
type ModuleServer interface {
	Set(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	Enable(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error)
	Disable(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error)
	Update(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	Remove(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error)
	RemoveAll(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error)
	Stop(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error)
	Snooze(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error)
	GetAll(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)
	Get(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	GetState(ctx context.Context, req *emptypb.Empty) (*structpb.Value, error)
}

// ServiceDesc describes the AlarmModule service for grpc.ServiceRegistrar.
//
//nolint:gochecknoglobals // Service descriptors are package-level by gRPC convention.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ModuleServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Set", Handler: unaryHandler(MethodSet, ModuleServer.Set)},
		{MethodName: "Enable", Handler: unaryHandler(MethodEnable, ModuleServer.Enable)},
		{MethodName: "Disable", Handler: unaryHandler(MethodDisable, ModuleServer.Disable)},
		{MethodName: "Update", Handler: unaryHandler(MethodUpdate, ModuleServer.Update)},
		{MethodName: "Remove", Handler: unaryHandler(MethodRemove, ModuleServer.Remove)},
		{MethodName: "RemoveAll", Handler: unaryHandler(MethodRemoveAll, ModuleServer.RemoveAll)},
		{MethodName: "Stop", Handler: unaryHandler(MethodStop, ModuleServer.Stop)},
		{MethodName: "Snooze", Handler: unaryHandler(MethodSnooze, ModuleServer.Snooze)},
		{MethodName: "GetAll", Handler: unaryHandler(MethodGetAll, ModuleServer.GetAll)},
		{MethodName: "Get", Handler: unaryHandler(MethodGet, ModuleServer.Get)},
		{MethodName: "GetState", Handler: unaryHandler(MethodGetState, ModuleServer.GetState)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "alarmclock/v1/alarm_module.proto",
}

// RegisterModuleServer registers the server implementation with a gRPC registrar.
func RegisterModuleServer(registrar grpc.ServiceRegistrar, srv ModuleServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

// unaryHandler builds the gRPC method handler for one ModuleServer method.
func unaryHandler[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](
	fullMethod string,
	call func(ModuleServer, context.Context, PReq) (Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(ModuleServer), ctx, in) //nolint:forcetypeassert // Guaranteed by HandlerType.
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}

		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ModuleServer), ctx, req.(PReq)) //nolint:forcetypeassert // Guaranteed by HandlerType.
		}

		return interceptor(ctx, in, info, handler)
	}
}
