package contacts

import (
	"fmt"
	"time"
)

// Layouts used to read and render birthdays.
const (
	// InputLayout is the D.M.YYYY form accepted from users. Day and month
	// may have one or two digits.
	InputLayout = "2.1.2006"
	// DisplayLayout is the zero-padded DD.MM.YYYY form shown to users.
	DisplayLayout = "02.01.2006"
	// ISOLayout is the YYYY-MM-DD form used in contact summaries.
	ISOLayout = "2006-01-02"
)

// Birthday is a calendar date with no time of day and no time zone.
// The zero Birthday is not a date; use NewBirthday, BirthdayOf, or
// ParseBirthday to construct one.
type Birthday struct {
	year  int
	month time.Month
	day   int
}

// NewBirthday returns the Birthday for the given date.
// Dates that do not exist (31 April, 29 February in a non-leap year)
// are rejected rather than normalized.
func NewBirthday(year int, month time.Month, day int) (Birthday, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		value := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		return Birthday{}, &ValidationError{Field: "birthday", Value: value, Err: ErrInvalidDate}
	}
	return Birthday{year: year, month: month, day: day}, nil
}

// BirthdayOf returns the date part of t in t's own location.
func BirthdayOf(t time.Time) Birthday {
	y, m, d := t.Date()
	return Birthday{year: y, month: m, day: d}
}

// ParseBirthday reads a date in InputLayout, so both "5.3.1990" and
// "05.03.1990" are accepted.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(InputLayout, s)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: s, Err: ErrInvalidDate}
	}
	return BirthdayOf(t), nil
}

// IsZero reports whether b holds no date.
func (b Birthday) IsZero() bool { return b == Birthday{} }

func (b Birthday) Year() int         { return b.year }
func (b Birthday) Month() time.Month { return b.month }
func (b Birthday) Day() int          { return b.day }

// Time returns b at midnight UTC.
func (b Birthday) Time() time.Time {
	return time.Date(b.year, b.month, b.day, 0, 0, 0, 0, time.UTC)
}

// String renders b as YYYY-MM-DD.
func (b Birthday) String() string { return b.Time().Format(ISOLayout) }

// Display renders b as DD.MM.YYYY.
func (b Birthday) Display() string { return b.Time().Format(DisplayLayout) }

func (b Birthday) isLeapDay() bool {
	return b.month == time.February && b.day == 29
}

// LeapDayPolicy decides where a 29 February birthday falls in a year
// that has no 29 February.
type LeapDayPolicy string

const (
	LeapDayMarch1 LeapDayPolicy = "mar1"
	LeapDayFeb28  LeapDayPolicy = "feb28"
)

// Valid reports whether p is a known policy.
func (p LeapDayPolicy) Valid() bool {
	return p == LeapDayMarch1 || p == LeapDayFeb28
}

// occurrence returns the date b is celebrated in year, at UTC midnight.
func (b Birthday) occurrence(year int, policy LeapDayPolicy) time.Time {
	if b.isLeapDay() && !isLeapYear(year) {
		if policy == LeapDayFeb28 {
			return time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC)
		}
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, b.month, b.day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
