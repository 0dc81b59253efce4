package view

import (
	"strconv"
	"time"

	"github.com/kdennisod/cash-stuffing/internal/types"
)

// YearSpan is the number of years offered before and after the current year.
const YearSpan = 5

var monthNames = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// MonthName returns the display name of a month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}

	return monthNames[m-1]
}

// Option is a single entry of a selector.
type Option struct {
	Value    int
	Label    string
	Selected bool
}

// PeriodSelector holds the options for choosing a period.
//
// Month values are zero based.
type PeriodSelector struct {
	Months []Option
	Years  []Option
}

// PeriodOptions returns the period selector for a point in time. The
// current month and year are selected.
func PeriodOptions(now time.Time) PeriodSelector {
	current := types.PeriodOf(now)

	s := PeriodSelector{
		Months: make([]Option, 0, 12),
		Years:  make([]Option, 0, 2*YearSpan+1),
	}

	for i, name := range monthNames {
		s.Months = append(s.Months, Option{
			Value:    i,
			Label:    name,
			Selected: i == current.MonthIndex(),
		})
	}

	for y := current.Year - YearSpan; y <= current.Year+YearSpan; y++ {
		s.Years = append(s.Years, Option{
			Value:    y,
			Label:    strconv.Itoa(y),
			Selected: y == current.Year,
		})
	}

	return s
}

// Default returns the selected period.
func (s PeriodSelector) Default() types.Period {
	var p types.Period
	for _, o := range s.Years {
		if o.Selected {
			p.Year = o.Value
		}
	}

	for _, o := range s.Months {
		if o.Selected {
			p.Month = time.Month(o.Value + 1)
		}
	}

	return p
}

// Contains reports if the period can be selected.
func (s PeriodSelector) Contains(p types.Period) bool {
	if !p.Valid() || len(s.Years) == 0 {
		return false
	}

	return p.Year >= s.Years[0].Value && p.Year <= s.Years[len(s.Years)-1].Value
}

// Select returns a copy of the selector with the period selected.
func (s PeriodSelector) Select(p types.Period) PeriodSelector {
	out := PeriodSelector{
		Months: make([]Option, len(s.Months)),
		Years:  make([]Option, len(s.Years)),
	}

	for i, o := range s.Months {
		o.Selected = o.Value == p.MonthIndex()
		out.Months[i] = o
	}

	for i, o := range s.Years {
		o.Selected = o.Value == p.Year
		out.Years[i] = o
	}

	return out
}
