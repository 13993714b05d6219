// Package client implements the alarmctl actions.
//
// Run connects to the alarm server, wraps the connection in a gateway and
// executes one Action against it. Actions print their results to the
// configured writer.
package client
