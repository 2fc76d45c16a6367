package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/username/holiday-calendar/internal/calendar"
)

const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiBlue    = "\033[34m"
	ansiGray    = "\033[90m"
	ansiReverse = "\033[7m"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// renderMonth prints view as a Monday-first grid. Days of adjacent months
// are dimmed. Without colour, holidays are marked with '*' and makeup
// workdays with '+'.
func renderMonth(w io.Writer, view *calendar.MonthView, color bool) {
	title := fmt.Sprintf("%s %d", view.Month, view.Year)
	width := len(weekdayHeader)*4 - 1
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), title)
	fmt.Fprintln(w, strings.Repeat("═", width))
	fmt.Fprintln(w, " "+strings.Join(weekdayHeader, "  "))

	for _, week := range view.Weeks {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, renderCell(cell, color))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	fmt.Fprintln(w)
	if color {
		fmt.Fprintf(w, "%sred%s holiday   %sblue%s makeup workday\n", ansiRed, ansiReset, ansiBlue, ansiReset)
	} else {
		fmt.Fprintln(w, "* holiday   + makeup workday")
	}
	fmt.Fprintf(w, "Holidays: %d   Makeup workdays: %d\n", view.Holidays, view.MakeupWorkdays)
}

func renderCell(cell calendar.DayCell, color bool) string {
	day := fmt.Sprintf("%2d", cell.Date.Day())
	if !cell.InMonth {
		if color {
			return ansiGray + day + ansiReset + " "
		}
		return day + " "
	}

	if !color {
		switch cell.Status {
		case calendar.DayStatusHoliday:
			return day + "*"
		case calendar.DayStatusMakeup:
			return day + "+"
		}
		return day + " "
	}

	var style string
	switch {
	case cell.Status == calendar.DayStatusHoliday:
		style = ansiRed
	case cell.Status == calendar.DayStatusMakeup:
		style = ansiBlue
	case cell.Weekend:
		style = ansiGray
	}
	if cell.Today {
		style += ansiReverse
	}
	if style == "" {
		return day + " "
	}
	return style + day + ansiReset + " "
}
