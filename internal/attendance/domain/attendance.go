package domain

import "time"

// Attendance status values. Only StatusPresent is ever written; absent and
// late exist in the data model and are aggregated in reports, but no code
// path transitions a record to them.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// DayFormat is the calendar-date key for attendance rows.
const DayFormat = "2006-01-02"

// Day returns t's calendar date in DayFormat. Day boundaries follow the
// server's location, matching when employees actually start their day.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// AttendanceRecord is one row bounding a user's presence for a single
// calendar day: a check-in and an optional check-out. At most one record
// exists per (user, day); the store enforces this with a uniqueness
// constraint.
type AttendanceRecord struct {
	ID        string
	UserID    string
	CheckIn   time.Time
	CheckOut  *time.Time // nil while the record is still open
	Day       string     // DayFormat calendar date
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the record has a check-in but no check-out yet.
func (r AttendanceRecord) Open() bool {
	return r.CheckOut == nil
}

// StatusCounts holds lifetime per-status totals for one user. Statuses with
// no rows count as zero.
type StatusCounts struct {
	Total   int
	Present int
	Absent  int
	Late    int
}
