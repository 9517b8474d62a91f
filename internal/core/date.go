package core

import "time"

// DateLayout is the wire and storage format for transaction dates.
const DateLayout = "2006-01-02"

// CreatedAtLayout is the storage format for creation timestamps. The
// fixed-width fractional part keeps lexical order equal to
// chronological order, which the store relies on for tie-breaking.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Date is a calendar date with day precision. The time-of-day part is
// always midnight UTC.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the calendar month, 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// MonthRange returns the half-open date-string range
// [first of month, first of next month) for the given year and month.
// Using the following month's first day instead of a literal day-31
// upper bound keeps short months and leap Februaries correct under
// lexical string comparison.
func MonthRange(year, month int) (start, end string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.Format(DateLayout), first.AddDate(0, 1, 0).Format(DateLayout)
}
