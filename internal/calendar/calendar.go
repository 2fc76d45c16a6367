package calendar

import (
	"context"
	"sort"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

// DayStatus represents the holiday status of a specific day
type DayStatus int

const (
	DayStatusOrdinary DayStatus = iota
	DayStatusHoliday
	DayStatusMakeup
)

// String returns the status name used in logs and API responses
func (s DayStatus) String() string {
	switch s {
	case DayStatusHoliday:
		return "holiday"
	case DayStatusMakeup:
		return "makeup"
	default:
		return "ordinary"
	}
}

// DateSet is a set of calendar dates keyed by YYYY-MM-DD
type DateSet map[string]struct{}

// Add adds the calendar date of t
func (s DateSet) Add(t time.Time) {
	s[dateutil.FormatDate(t)] = struct{}{}
}

// Has reports whether the calendar date of t is in the set
func (s DateSet) Has(t time.Time) bool {
	_, ok := s[dateutil.FormatDate(t)]
	return ok
}

// Sorted returns the dates in ascending order
func (s DateSet) Sorted() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Classification holds the resolved holidays and makeup workdays of one year
type Classification struct {
	Year           int
	Holidays       DateSet
	MakeupWorkdays DateSet
}

// NewClassification returns an empty classification for year
func NewClassification(year int) *Classification {
	return &Classification{
		Year:           year,
		Holidays:       make(DateSet),
		MakeupWorkdays: make(DateSet),
	}
}

// IsEmpty reports whether neither set holds a date
func (c *Classification) IsEmpty() bool {
	return len(c.Holidays) == 0 && len(c.MakeupWorkdays) == 0
}

// Classify returns the status of date. Makeup wins over holiday when a date
// appears in both sets; only the calendar date of date is compared.
func Classify(date time.Time, c *Classification) DayStatus {
	if c == nil {
		return DayStatusOrdinary
	}
	if c.MakeupWorkdays.Has(date) {
		return DayStatusMakeup
	}
	if c.Holidays.Has(date) {
		return DayStatusHoliday
	}
	return DayStatusOrdinary
}

// Calendar resolves the classification of a year
type Calendar interface {
	// Resolve returns the classification for year. It never fails; a year
	// without data yields an empty classification.
	Resolve(ctx context.Context, year int) *Classification
}
