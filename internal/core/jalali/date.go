package jalali

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
)

// Date is a calendar day in the Jalali calendar.
// The zero value is not a valid date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// MonthOfYear identifies one calendar month.
type MonthOfYear struct {
	Year  int
	Month int
}

// IsLeapYear reports whether a Jalali year is a leap year, using the
// 33-year cycle approximation. It is accurate for the years this
// system deals with (14xx).
func IsLeapYear(year int) bool {
	switch year % 33 {
	case 1, 5, 9, 13, 17, 22, 26, 30:
		return true
	}
	return false
}

// DaysInMonth returns the number of days in the given Jalali month.
// Months 1-6 have 31 days, 7-11 have 30, and month 12 has 29 or 30
// depending on leap years.
func DaysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsLeapYear(year):
		return 30
	default:
		return 29
	}
}

// ParseDate parses a "YYYY/MM/DD" string into a Date. Persian and
// Arabic-Indic digits are accepted. Single-digit month and day are
// accepted ("1404/9/5").
func ParseDate(s string) (Date, error) {
	parts := strings.Split(NormalizeDigits(strings.TrimSpace(s)), "/")
	if len(parts) != 3 {
		return Date{}, apperror.NewValidation(
			fmt.Sprintf("invalid date %q: expected YYYY/MM/DD", s))
	}

	year, err := parseComponent(parts[0], 1000, 9999, "year")
	if err != nil {
		return Date{}, err
	}
	month, err := parseComponent(parts[1], 1, 12, "month")
	if err != nil {
		return Date{}, err
	}
	day, err := parseComponent(parts[2], 1, 31, "day")
	if err != nil {
		return Date{}, err
	}
	if day > DaysInMonth(year, month) {
		return Date{}, apperror.NewValidation(
			fmt.Sprintf("invalid date %q: month %d has %d days", s, month, DaysInMonth(year, month)))
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseMonth parses a "YYYY/MM" string into a MonthOfYear.
func ParseMonth(s string) (MonthOfYear, error) {
	parts := strings.Split(NormalizeDigits(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return MonthOfYear{}, apperror.NewValidation(
			fmt.Sprintf("invalid month %q: expected YYYY/MM", s))
	}

	year, err := parseComponent(parts[0], 1000, 9999, "year")
	if err != nil {
		return MonthOfYear{}, err
	}
	month, err := parseComponent(parts[1], 1, 12, "month")
	if err != nil {
		return MonthOfYear{}, err
	}

	return MonthOfYear{Year: year, Month: month}, nil
}

func parseComponent(s string, min, max int, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperror.NewValidation(fmt.Sprintf("invalid %s %q", name, s))
	}
	if n < min || n > max {
		return 0, apperror.NewValidation(
			fmt.Sprintf("%s %d out of range [%d, %d]", name, n, min, max))
	}
	return n, nil
}

// NormalizeDateString parses and reformats a date string into the
// canonical zero-padded "YYYY/MM/DD" form.
func NormalizeDateString(s string) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// NormalizeMonthString parses and reformats a month string into the
// canonical zero-padded "YYYY/MM" form.
func NormalizeMonthString(s string) (string, error) {
	m, err := ParseMonth(s)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// String formats the date as zero-padded "YYYY/MM/DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0, or 1 comparing d to other in calendar order.
func (d Date) Compare(other Date) int {
	if c := cmp(d.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp(d.Month, other.Month); c != 0 {
		return c
	}
	return cmp(d.Day, other.Day)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Within reports whether d falls in the inclusive range [from, to].
func (d Date) Within(from, to Date) bool {
	return d.Compare(from) >= 0 && d.Compare(to) <= 0
}

// MonthOf returns the month containing d.
func (d Date) MonthOf() MonthOfYear {
	return MonthOfYear{Year: d.Year, Month: d.Month}
}

// String formats the month as zero-padded "YYYY/MM".
func (m MonthOfYear) String() string {
	return fmt.Sprintf("%04d/%02d", m.Year, m.Month)
}

// Compare returns -1, 0, or 1 comparing m to other in calendar order.
func (m MonthOfYear) Compare(other MonthOfYear) int {
	if c := cmp(m.Year, other.Year); c != 0 {
		return c
	}
	return cmp(m.Month, other.Month)
}

// Within reports whether m falls in the inclusive range [from, to].
func (m MonthOfYear) Within(from, to MonthOfYear) bool {
	return m.Compare(from) >= 0 && m.Compare(to) <= 0
}

// FirstDay returns the first day of the month.
func (m MonthOfYear) FirstDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// LastDay returns the last day of the month, leap-aware for month 12.
func (m MonthOfYear) LastDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: m.DayCount()}
}

// DayCount returns the number of days in the month.
func (m MonthOfYear) DayCount() int {
	return DaysInMonth(m.Year, m.Month)
}

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
