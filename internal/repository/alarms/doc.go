// Package alarms implements persistence for the alarm records kept by the
// reference alarm service.
//
// The FileRepository stores and loads the records as JSON on disk and exposes
// a Repository interface that the server service depends on.
package alarms
