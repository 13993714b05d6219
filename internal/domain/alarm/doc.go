// Package alarm contains the Alarm record and its conversions.
//
// An Alarm is built leniently from a partial configuration: every field the
// caller leaves out, sets to nil or supplies in an unusable shape falls back to
// its default. Records cross the service boundary in the service day-of-week
// convention (Sunday first) and are read back into the in-app convention
// (Monday first) with ToService and FromService.
package alarm
