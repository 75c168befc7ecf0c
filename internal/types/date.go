// Package types implements special types for CoinCraft.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date is a calendar date without a time component.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs, in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.In(time.UTC).Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC3339 full-date format and returns the Date
// value it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return time.Time(d).After(time.Time(other))
}

// Compare compares two dates. The result is -1, 0 or 1.
func (d Date) Compare(other Date) int {
	return time.Time(d).Compare(time.Time(other))
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected as a YYYY-MM-DD string, but full RFC3339
// timestamps are accepted and truncated to their date.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value)
	if err != nil {
		return err
	}

	pattern := "2006-01-02T15:04:05Z07:00"
	if match {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// UnmarshalParam binds a query or URI parameter to a Date.
func (d *Date) UnmarshalParam(p string) error {
	if p == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
