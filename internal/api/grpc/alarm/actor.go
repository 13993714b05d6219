package alarm

import (
	"context"
	"fmt"

	"google.golang.org/grpc/metadata"
)

// Metadata keys that carry the calling actor.
const (
	hostnameKey = "x-alarm-hostname"
	usernameKey = "x-alarm-username"
)

// Actor identifies who issued a call to the alarm service.
type Actor struct {
	// Hostname is the machine name the call came from.
	Hostname string
	// Username is the system user who issued the call.
	Username string
}

// String renders the actor as username@hostname.
func (a *Actor) String() string {
	if a == nil {
		return "<unknown>"
	}

	return fmt.Sprintf("%s@%s", a.Username, a.Hostname)
}

// AppendActor attaches the actor to the outgoing metadata of ctx.
func AppendActor(ctx context.Context, actor *Actor) context.Context {
	if actor == nil {
		return ctx
	}

	return metadata.AppendToOutgoingContext(ctx, hostnameKey, actor.Hostname, usernameKey, actor.Username)
}

// ActorFromContext extracts the caller from incoming metadata.
// It returns nil when the caller did not identify itself.
func ActorFromContext(ctx context.Context) *Actor {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	hostnames, usernames := md.Get(hostnameKey), md.Get(usernameKey)
	if len(hostnames) == 0 && len(usernames) == 0 {
		return nil
	}

	actor := new(Actor)

	if len(hostnames) > 0 {
		actor.Hostname = hostnames[0]
	}

	if len(usernames) > 0 {
		actor.Username = usernames[0]
	}

	return actor
}
