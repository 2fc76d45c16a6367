package calendar

import (
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

// DayCell is one cell of a month grid
type DayCell struct {
	Date    time.Time
	Status  DayStatus
	InMonth bool
	Weekend bool
	Today   bool
}

// MonthView is a Monday-first grid of whole weeks covering a month
type MonthView struct {
	Year  int
	Month time.Month
	Weeks [][7]DayCell

	Holidays       int
	MakeupWorkdays int
}

// BuildMonth lays out year/month as whole weeks. Cells of adjacent months
// are included for padding but carry no status.
func BuildMonth(year int, month time.Month, c *Classification, today time.Time) *MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, dateutil.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)

	view := &MonthView{
		Year:  year,
		Month: month,
	}

	var week [7]DayCell
	col := 0
	dateutil.EachDay(dateutil.StartOfWeek(first), dateutil.EndOfWeek(last), func(d time.Time) {
		cell := DayCell{
			Date:    d,
			InMonth: d.Month() == month,
			Weekend: dateutil.IsWeekend(d),
			Today:   dateutil.IsSameDay(d, today),
		}
		if cell.InMonth {
			cell.Status = Classify(d, c)
			switch cell.Status {
			case DayStatusHoliday:
				view.Holidays++
			case DayStatusMakeup:
				view.MakeupWorkdays++
			}
		}

		week[col] = cell
		col++
		if col == 7 {
			view.Weeks = append(view.Weeks, week)
			week = [7]DayCell{}
			col = 0
		}
	})

	return view
}

// NextMonth returns the month after year/month
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth returns the month before year/month
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
