package service

import "time"

// DateLayout is the wire format for reservation dates
const DateLayout = "2006-01-02"

// Day truncates a timestamp to UTC midnight. Reservations operate on whole
// days only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at UTC midnight
func Today() time.Time {
	return Day(time.Now().UTC())
}

// Overlaps reports whether two end-exclusive date ranges [s1,e1) and
// [s2,e2) share at least one night. A range starting exactly on another's
// end date does not overlap, so back-to-back bookings are allowed. The SQL
// conflict queries in the repository layer mirror this exact comparison
// (start_date < end AND end_date > start); keep them in sync.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Nights returns the number of nights between two dates. Both dates must
// already be truncated to midnight with start < end.
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
