// Package types implements special types for Cash Stuffing.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("the period must have the format YYYY-M with a zero based month between 0 and 11")

// Period is a month in a specific year. It scopes exactly one budget.
//
// The string representation is "{year}-{monthIndex}" where monthIndex is
// zero based, so "2024-0" is January 2024.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod returns a new Period.
func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// PeriodOf returns the Period in which a time occurs in that time's location.
func PeriodOf(t time.Time) Period {
	year, month, _ := t.Date()
	return Period{Year: year, Month: month}
}

// ParsePeriod parses a "{year}-{monthIndex}" key.
func ParsePeriod(s string) (Period, error) {
	year, index, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return Period{}, fmt.Errorf("%w: '%s'", ErrInvalidPeriod, s)
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < 1 {
		return Period{}, fmt.Errorf("%w: '%s'", ErrInvalidPeriod, s)
	}

	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i > 11 {
		return Period{}, fmt.Errorf("%w: '%s'", ErrInvalidPeriod, s)
	}

	return Period{Year: y, Month: time.Month(i + 1)}, nil
}

// MonthIndex returns the zero based index of the month.
func (p Period) MonthIndex() int {
	return int(p.Month) - 1
}

// String returns the period key.
func (p Period) String() string {
	return fmt.Sprintf("%d-%d", p.Year, p.MonthIndex())
}

// Valid reports if the period has a year and a month between January and December.
func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= time.January && p.Month <= time.December
}

// AddMonths adds a number of months, which can be negative.
func (p Period) AddMonths(months int) Period {
	return PeriodOf(p.Time().AddDate(0, months, 0))
}

// Time returns the first instant of the period in UTC.
func (p Period) Time() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Before reports whether the period p is before q.
func (p Period) Before(q Period) bool {
	return p.Time().Before(q.Time())
}

// MarshalText implements the encoding.TextMarshaler interface.
//
// This makes Period usable as key for JSON objects.
func (p Period) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidPeriod, p.Year, p.MonthIndex())
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *Period) UnmarshalText(data []byte) error {
	parsed, err := ParsePeriod(string(data))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// UnmarshalParam is used by gin to bind URI and query parameters.
func (p *Period) UnmarshalParam(param string) error {
	return p.UnmarshalText([]byte(param))
}
