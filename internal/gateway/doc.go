// Package gateway forwards alarm lifecycle operations to an alarm service.
//
// The Gateway normalizes caller configurations into alarm records, converts
// them to the service day convention and hands them to the injected Service.
// Results read back from the service are converted to the in-app convention.
// Errors from the service are returned to the caller unchanged.
package gateway
