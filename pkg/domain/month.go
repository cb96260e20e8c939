package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Month identifies a calendar month of a given year. It is comparable, so two
// dates in the same month yield equal keys and can group map entries.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month a date falls in.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth is the inverse of Month.String, ie. "3/2023".
func ParseMonth(s string) (Month, error) {
	bits := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(bits) != 2 {
		return Month{}, fmt.Errorf("invalid month %q, expected M/YYYY", s)
	}

	m, err := strconv.Atoi(bits[0])
	if err != nil || m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month %q: bad month number", s)
	}

	y, err := strconv.Atoi(bits[1])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: bad year", s)
	}

	return Month{Year: y, Month: time.Month(m)}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%d/%d", int(m.Month), m.Year)
}

// Before reports whether m is chronologically earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// SortMonths sorts in place, earliest first.
func SortMonths(months []Month) {
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
}
