// Package common holds helpers shared by several services.
//
// It provides a gRPC client for the alarm service that satisfies
// gateway.Service, with per-call timeouts and caller identification, and a
// helper to detect the current system actor (hostname/username).
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
