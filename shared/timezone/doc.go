// Package timezone pins every wall-clock computation to the configured booking location.
//
// Check-in and check-out hours, day truncation of special intervals and the
// weekend test all read the clock through this package:
//
//	now := timezone.Now()
//	local := timezone.ToAppTime(item.StartDatetime)
//	day := timezone.Format(local, "2006-01-02")
//
// The location comes from APP_TIMEZONE as an IANA name ("Europe/Moscow", "UTC")
// and falls back to UTC when unset or unknown.
package timezone
