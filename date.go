package rpgn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Date is a PGN date tag value. Any of the three parts may be unknown,
// rendered as "?" glyphs: "2024.02.14", "????.02.??", "0015.12.??".
//
// Year is -1 when unknown (0 is a valid PGN year); Month and Day are 0
// when unknown.
type Date struct {
	Year  int
	Month int
	Day   int
}

var (
	ErrDateYearRange  = errors.New("rpgn: date year greater than 9999")
	ErrDateMonthRange = errors.New("rpgn: date month greater than 12")
	ErrDateDayRange   = errors.New("rpgn: date day greater than 31")
)

// NewDate validates and builds a Date. Pass -1 for an unknown year and 0
// for an unknown month or day.
func NewDate(year, month, day int) (Date, error) {
	if year > 9999 {
		return Date{}, ErrDateYearRange
	}
	if month > 12 {
		return Date{}, ErrDateMonthRange
	}
	if day > 31 {
		return Date{}, ErrDateDayRange
	}
	if year < 0 {
		year = -1
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses a "YYYY.MM.DD" tag value where any part may be "?" or
// "??". A part that fails to parse as a number is treated as unknown,
// like the original notation readers do; a missing part is an error.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("rpgn: date %q does not have three dot-separated parts", s)
	}

	year := -1
	if y, err := strconv.Atoi(parts[0]); err == nil && y >= 0 {
		year = y
	}
	month := 0
	if m, err := strconv.Atoi(parts[1]); err == nil && m > 0 {
		month = m
	}
	day := 0
	if d, err := strconv.Atoi(parts[2]); err == nil && d > 0 {
		day = d
	}

	return NewDate(year, month, day)
}

// String formats the date for a tag value. Unknown parts render as "?"
// glyphs; known parts are zero-padded.
func (d Date) String() string {
	var sb strings.Builder
	if d.Year >= 0 {
		fmt.Fprintf(&sb, "%04d", d.Year)
	} else {
		sb.WriteString("????")
	}
	sb.WriteByte('.')
	if d.Month > 0 {
		fmt.Fprintf(&sb, "%02d", d.Month)
	} else {
		sb.WriteString("??")
	}
	sb.WriteByte('.')
	if d.Day > 0 {
		fmt.Fprintf(&sb, "%02d", d.Day)
	} else {
		sb.WriteString("??")
	}
	return sb.String()
}
