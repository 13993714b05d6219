// Package config defines the settings shared by alarm-server and alarmctl and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the gRPC address of the alarm service, the file the
// service keeps its alarms in, the call timeout and the log level.
package config
