package date

import (
	"fmt"
	"time"
)

// YearStrategy decides which year a month/day pair published without a year belongs to.
type YearStrategy int

const (
	// CurrentYear always uses the year of the reference day.
	// A page still showing "12/31" read on January 2nd is dated in the new year.
	CurrentYear YearStrategy = iota
	// MostRecent uses the latest year that puts the date on or before the reference day.
	MostRecent
)

func (s YearStrategy) String() string {
	switch s {
	case CurrentYear:
		return "current"
	case MostRecent:
		return "recent"
	}
	return fmt.Sprintf("YearStrategy(%d)", int(s))
}

// ParseYearStrategy parses "current" or "recent".
func ParseYearStrategy(s string) (YearStrategy, error) {
	switch s {
	case "current", "":
		return CurrentYear, nil
	case "recent":
		return MostRecent, nil
	}
	return CurrentYear, fmt.Errorf("unknown year strategy %q want \"current\" or \"recent\"", s)
}

// Infer builds the full date of a month/day pair relative to the reference day.
// Unlike New, it does not normalize: 2/30 is an error.
func (s YearStrategy) Infer(month, day int, ref Date) (Date, error) {
	d, err := exact(ref.Year(), month, day)
	if s == CurrentYear {
		return d, err
	}
	if err == nil && !d.After(ref) {
		return d, nil
	}
	// 2/29 read on a non leap year also lands here.
	prev, perr := exact(ref.Year()-1, month, day)
	if perr != nil {
		if err != nil {
			return Date{}, err
		}
		return Date{}, perr
	}
	return prev, nil
}

// exact returns the date only if month and day designate an existing day of that year.
func exact(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid month %d in %d/%d", month, month, day)
	}
	d := New(year, time.Month(month), day)
	if d.Month() != time.Month(month) || d.Day() != day {
		return Date{}, fmt.Errorf("invalid day %d in %d/%d for year %d", day, month, day, year)
	}
	return d, nil
}
