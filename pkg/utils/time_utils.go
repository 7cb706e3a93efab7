package utils

import "time"

// Istanbul time location (TRT, +03:00)
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Istanbul"); err == nil {
		return loc
	}
	return time.FixedZone("TRT", 3*3600)
}()

// DayKey buckets an epoch timestamp (seconds) into a calendar-day key in
// guide-local time. Used to group forecast entries that arrive in 3-hour
// slices.
func DayKey(unixSeconds int64) string {
	if unixSeconds <= 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).In(istLoc).Format("2006-01-02")
}
