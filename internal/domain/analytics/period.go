// Package analytics holds the pure computation core of the tracker: calendar
// period math, the dashboard aggregation engine and the goal progress
// evaluator. Nothing in this package touches the database or the clock; the
// caller materializes the records and supplies the reference instant.
package analytics

import "time"

// CurrentPeriod returns the calendar month and year containing now.
func CurrentPeriod(now time.Time) (time.Month, int) {
	return now.Month(), now.Year()
}

// PreviousPeriod returns the calendar month before the given one, wrapping
// January back to December of the previous year.
func PreviousPeriod(month time.Month, year int) (time.Month, int) {
	if month == time.January {
		return time.December, year - 1
	}
	return month - 1, year
}

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of calendar days in the given month.
// Passing a month outside 1..12 is a programming error and panics.
func DaysInMonth(month time.Month, year int) int {
	if month == time.February && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// isLeapYear applies the Gregorian rule: divisible by 4, except centuries
// not divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// SameCalendarDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
