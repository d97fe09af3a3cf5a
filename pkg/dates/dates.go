// Package dates implements the calendar-date rules used by payment
// instructions: shape validation of YYYY-MM-DD strings and classification of
// a date as future relative to the current UTC day.
package dates

import (
	"strconv"
	"time"
)

// IsValidFormat reports whether s looks like a YYYY-MM-DD date.
//
// This is a shape check, not a calendar check: the year must be in
// [1000, 9999], the month in [1, 12] and the day in [1, 31], but month
// lengths and leap years are not enforced, so "2025-02-30" passes.
func IsValidFormat(s string) bool {
	if len(s) != 10 {
		return false
	}
	if s[4] != '-' || s[7] != '-' {
		return false
	}
	year, ok := atoiDigits(s[0:4])
	if !ok {
		return false
	}
	month, ok := atoiDigits(s[5:7])
	if !ok {
		return false
	}
	day, ok := atoiDigits(s[8:10])
	if !ok {
		return false
	}
	return year >= 1000 && year <= 9999 &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= 31
}

// IsFuture reports whether s names a UTC calendar day strictly after now's.
// The comparison is component-wise (year, then month, then day); a date
// equal to today is not future. The caller must have checked IsValidFormat
// first; malformed input returns false.
func IsFuture(s string, now time.Time) bool {
	if !IsValidFormat(s) {
		return false
	}
	year, _ := atoiDigits(s[0:4])
	month, _ := atoiDigits(s[5:7])
	day, _ := atoiDigits(s[8:10])

	today := now.UTC()
	if year != today.Year() {
		return year > today.Year()
	}
	if month != int(today.Month()) {
		return month > int(today.Month())
	}
	return day > today.Day()
}

// atoiDigits parses s as a base-10 integer, accepting ASCII digits only.
// strconv.Atoi alone is too lenient here: it accepts a leading sign, which
// would let "-025" pass as a day.
func atoiDigits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
