// Package version holds build metadata shared by alarm-server and alarmctl.
package version
