package dates

import (
	"time"

	"goext/bounds"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsBetween reports whether t lies between a and b under mode. The bounds may be given in either order.
func IsBetween(t, a, b time.Time, mode bounds.Mode) bool {
	return bounds.Times.IsBetweenEitherMode(t, a, b, mode)
}

// DaysBetween counts calendar days from a to b, in a's location. It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	from := StartOfDay(a)
	to := StartOfDay(b.In(a.Location()))

	// Dates are rebuilt in UTC so DST transitions don't produce 23 or 25 hour days.
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(toUTC.Sub(fromUTC).Hours() / 24)
}

// Age returns the number of whole years between birth and at. It is 0 if at is before birth.
func Age(birth, at time.Time) int {
	at = at.In(birth.Location())
	if at.Before(birth) {
		return 0
	}

	years := at.Year() - birth.Year()
	if !sameOrLaterInYear(at, birth) {
		years--
	}

	return years
}

func sameOrLaterInYear(at, birth time.Time) bool {
	if at.Month() != birth.Month() {
		return at.Month() > birth.Month()
	}
	return at.Day() >= birth.Day()
}

// AddWeekdays moves t by n weekdays, skipping Saturdays and Sundays. A negative n moves backwards.
// Starting on a weekend, the first step lands on the nearest weekday in that direction.
func AddWeekdays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}

	for n > 0 {
		t = t.AddDate(0, 0, step)
		if !IsWeekend(t) {
			n--
		}
	}

	return t
}
