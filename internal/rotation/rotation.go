// Package rotation computes the recurring Sunday day-off cycle: an
// enrolled employee works three Sundays and rests on the fourth,
// anchored at their first worked Sunday. Nothing here is persisted;
// results are derived on demand so changing an anchor retroactively
// changes every past and future Sunday.
package rotation

import (
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
)

const weekHours = 7 * 24

// SundaysInMonth returns every Sunday of the given month in ascending
// order, at most five.
func SundaysInMonth(month time.Month, year int) []time.Time {
	var sundays []time.Time
	for d := 1; d <= 31; d++ {
		dt := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if dt.Month() != month {
			continue
		}
		if dt.Weekday() == time.Sunday {
			sundays = append(sundays, dt)
		}
	}
	return sundays
}

// WeeksBetween returns the number of whole 7-day periods from first to
// other. Both dates are reduced to UTC midnight before subtracting, so
// daylight-saving offsets can never skew the result. The division
// floors, so a target before the anchor yields a negative count.
func WeeksBetween(first, other time.Time) int {
	a := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year(), other.Month(), other.Day(), 0, 0, 0, 0, time.UTC)
	hours := int(b.Sub(a).Hours())
	return floorDiv(hours, weekHours)
}

// IsRestWeek reports whether target is the rest Sunday of the 4-week
// cycle anchored at firstWorkedSunday (YYYY-MM-DD). The anchor itself
// is offset 0 and always a work Sunday; offsets 0..2 work, offset 3
// rests. An empty or unparseable anchor always yields false. The cycle
// extends backward in time with no lower bound.
func IsRestWeek(firstWorkedSunday string, target time.Time) bool {
	if firstWorkedSunday == "" {
		return false
	}
	anchor, err := time.Parse(domain.DateLayout, firstWorkedSunday)
	if err != nil {
		return false
	}
	idx := ((WeeksBetween(anchor, target) % 4) + 4) % 4
	return idx == 3
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
