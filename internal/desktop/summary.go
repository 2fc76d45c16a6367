package desktop

import (
	"context"
	"fmt"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/pkg/dateutil"
)

// Resolver is the part of calendar.Resolver the tray needs
type Resolver interface {
	calendar.Calendar
	Forget(year int)
}

// TodaySummary describes today's status and the current month's counts
func TodaySummary(ctx context.Context, cal calendar.Calendar) string {
	today := dateutil.Today()
	c := cal.Resolve(ctx, today.Year())
	view := calendar.BuildMonth(today.Year(), today.Month(), c, today)

	return fmt.Sprintf("Date: %s\nStatus: %s\nHolidays this month: %d\nMakeup workdays this month: %d",
		dateutil.FormatDate(today),
		calendar.Classify(today, c),
		view.Holidays,
		view.MakeupWorkdays)
}
