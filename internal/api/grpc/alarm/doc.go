// Package alarm implements the gRPC transport for the alarm service.
//
// The service is declared by hand on top of protobuf well-known types:
// records travel as structpb.Struct, uids as wrapperspb.StringValue and the
// opaque service state as structpb.Value. The package exposes a server that
// calls into a gateway.Service backend, the codec between alarm records and
// protobuf messages, and metadata helpers that carry the calling actor.
package alarm
