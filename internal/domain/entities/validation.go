package entities

import "fmt"

// DateValidationResult reports the structural well-formedness of a date.
// Validation accumulates every violation instead of short-circuiting and
// never fails on its own; callers decide between strict and lenient
// handling.
type DateValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// IsLeapYear reports whether a year is a leap year under the proleptic
// Gregorian rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// gregorianMonthDays holds the month lengths of a common year
var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInGregorianMonth returns the number of days in a Gregorian month,
// accounting for leap-year February. Months outside 1-12 report 0.
func DaysInGregorianMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}

// ValidateGregorianDate checks the structural well-formedness of a
// Gregorian date
func ValidateGregorianDate(date GregorianDate) DateValidationResult {
	var errs []string

	if date.Year < 1 || date.Year > 9999 {
		errs = append(errs, "Year must be between 1 and 9999")
	}
	if date.Month < 1 || date.Month > 12 {
		errs = append(errs, "Month must be between 1 and 12")
	}
	if date.Day < 1 {
		errs = append(errs, "Day must be at least 1")
	}

	// Month-length check only makes sense once month and day are in range
	if date.Month >= 1 && date.Month <= 12 && date.Day >= 1 {
		if max := DaysInGregorianMonth(date.Year, date.Month); date.Day > max {
			errs = append(errs, fmt.Sprintf("Day %d is invalid for month %d in year %d (month has %d days)",
				date.Day, date.Month, date.Year, max))
		}
	}

	return DateValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateHijriDate checks the structural bounds of a Hijri date. Day is
// bounded at 30 for every month; the engine does not model the true 29/30
// day alternation of Hijri months.
func ValidateHijriDate(date HijriDate) DateValidationResult {
	var errs []string

	if date.Year < 1 || date.Year > 2000 {
		errs = append(errs, "Year must be between 1 and 2000")
	}
	if date.Month < 1 || date.Month > 12 {
		errs = append(errs, "Month must be between 1 and 12")
	}
	if date.Day < 1 || date.Day > 30 {
		errs = append(errs, "Day must be between 1 and 30")
	}

	return DateValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
