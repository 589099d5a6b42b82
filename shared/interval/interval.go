// Package interval holds the datetime range arithmetic used by pricing and availability.
//
// Ranges are half-open: [start, end).
package interval

import "time"

const day = 24 * time.Hour

// Unit is a billing granularity.
type Unit string

const (
	UnitHour Unit = "HOUR"
	UnitDay  Unit = "DAY"
)

func (u Unit) Duration() time.Duration {
	if u == UnitDay {
		return day
	}

	return time.Hour
}

func (u Unit) Valid() bool {
	return u == UnitHour || u == UnitDay
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect. Touching ranges do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsWithGuard shrinks the candidate range a by guard on both edges before comparing it with b.
// Bookings that only touch, or overlap by less than guard at one edge, do not conflict.
func OverlapsWithGuard(aStart, aEnd, bStart, bEnd time.Time, guard time.Duration) bool {
	return Overlaps(aStart.Add(guard), aEnd.Add(-guard), bStart, bEnd)
}

// OverlapAmount returns the overlap of two ranges in whole units, never negative.
func OverlapAmount(aStart, aEnd, bStart, bEnd time.Time, unit Unit) int64 {
	latestStart := aStart
	if bStart.After(latestStart) {
		latestStart = bStart
	}

	earliestEnd := aEnd
	if bEnd.Before(earliestEnd) {
		earliestEnd = bEnd
	}

	delta := earliestEnd.Sub(latestStart)
	if delta <= 0 {
		return 0
	}

	return int64(delta / unit.Duration())
}

// CountWeekendDays counts Saturdays and Sundays among start+1d, start+2d, ... start+Nd,
// where N is the number of whole days between start and end.
func CountWeekendDays(start, end time.Time) int64 {
	days := int64(end.Sub(start) / day)

	var weekends int64

	for offset := int64(1); offset <= days; offset++ {
		if IsWeekend(start.AddDate(0, 0, int(offset))) {
			weekends++
		}
	}

	return weekends
}

func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()

	return weekday == time.Saturday || weekday == time.Sunday
}

// Contains reports whether [innerStart, innerEnd] lies within [outerStart, outerEnd].
func Contains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !innerStart.Before(outerStart) && !innerEnd.After(outerEnd)
}

// AtClock returns t's calendar day at hour:00:00 in t's location.
func AtClock(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// TruncateDay returns midnight of t's calendar day in t's location.
func TruncateDay(t time.Time) time.Time {
	return AtClock(t, 0)
}
