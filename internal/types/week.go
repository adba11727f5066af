package types

import (
	"fmt"
	"time"
)

// Week is a reporting bucket identifying a Monday-anchored week of a
// calendar year.
//
// Numbering follows strftime's %W directive: week 01 starts on the first
// Monday of the year, days before it fall into week 00. This is not ISO 8601
// week numbering. The ledger reports have always used %W buckets, so changing
// this would silently regroup historical summaries.
type Week struct {
	Year int
	Week int
}

// WeekOf returns the Week bucket a date falls in.
func WeekOf(d Date) Week {
	t := time.Time(d)

	// Days since Monday, with Monday as 0
	wday := (int(t.Weekday()) + 6) % 7

	return Week{
		Year: t.Year(),
		Week: (t.YearDay() - 1 + 7 - wday) / 7,
	}
}

// String returns the week formatted as YYYY-WNN, the bucket label shown in
// the ledger reports.
func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

// Before reports whether the week bucket w is before x.
func (w Week) Before(x Week) bool {
	if w.Year != x.Year {
		return w.Year < x.Year
	}
	return w.Week < x.Week
}
