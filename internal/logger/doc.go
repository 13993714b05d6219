// Package logger wraps zap with a global console logger on stderr whose level
// follows the configuration file, and with helpers that carry a scoped logger
// inside a context. Alarm services and clients log through the context so that
// per-call fields such as the method and caller follow the request.
package logger
