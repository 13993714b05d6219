package version

import "fmt"

// Build metadata, overridden with -ldflags "-X".
var (
	// Version is the release of the alarm clock tools.
	Version = "0.1.0"
	// Commit is the short git SHA, "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns the release string.
func Short() string {
	return Version
}

// Full renders release, commit and build time on one line.
func Full() string {
	return fmt.Sprintf("alarm-clock %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// UserAgent names a component and release for gRPC user-agent headers.
func UserAgent(component string) string {
	return component + "/" + Version
}
