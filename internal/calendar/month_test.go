package calendar

import (
	"testing"
	"time"
)

func TestBuildMonth_October2024(t *testing.T) {
	c := NewClassification(2024)
	for _, d := range []string{"2024-10-01", "2024-10-02", "2024-10-03", "2024-10-04", "2024-10-07"} {
		c.Holidays.Add(date(t, d))
	}
	c.MakeupWorkdays.Add(date(t, "2024-09-29")) // outside the month, not counted
	c.MakeupWorkdays.Add(date(t, "2024-10-12"))

	today := date(t, "2024-10-08")
	view := BuildMonth(2024, time.October, c, today)

	// 2024-10-01 is a Tuesday: grid starts Monday 2024-09-30 and ends Sunday 2024-11-03
	if len(view.Weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(view.Weeks))
	}

	first := view.Weeks[0][0]
	if first.Date.Format("2006-01-02") != "2024-09-30" || first.InMonth {
		t.Errorf("first cell = %+v, want out-of-month 2024-09-30", first)
	}
	if first.Status != DayStatusOrdinary {
		t.Errorf("out-of-month cell status = %v, want ordinary", first.Status)
	}

	last := view.Weeks[4][6]
	if last.Date.Format("2006-01-02") != "2024-11-03" || last.InMonth || !last.Weekend {
		t.Errorf("last cell = %+v, want out-of-month Sunday 2024-11-03", last)
	}

	oct1 := view.Weeks[0][1]
	if oct1.Status != DayStatusHoliday {
		t.Errorf("2024-10-01 status = %v, want holiday", oct1.Status)
	}

	oct12 := view.Weeks[1][5]
	if oct12.Date.Day() != 12 || oct12.Status != DayStatusMakeup || !oct12.Weekend {
		t.Errorf("2024-10-12 cell = %+v, want makeup Saturday", oct12)
	}

	oct8 := view.Weeks[1][1]
	if !oct8.Today {
		t.Errorf("2024-10-08 should be flagged as today")
	}

	if view.Holidays != 5 || view.MakeupWorkdays != 1 {
		t.Errorf("counts = %d/%d, want 5/1", view.Holidays, view.MakeupWorkdays)
	}
}

func TestBuildMonth_StartsOnMonday(t *testing.T) {
	// 2024-07-01 is a Monday; no leading padding
	view := BuildMonth(2024, time.July, nil, time.Time{})

	if !view.Weeks[0][0].InMonth || view.Weeks[0][0].Date.Day() != 1 {
		t.Errorf("first cell = %+v, want 2024-07-01", view.Weeks[0][0])
	}
	for _, week := range view.Weeks {
		for col, cell := range week {
			if cell.Date.IsZero() {
				t.Fatalf("empty cell at column %d", col)
			}
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantNextY int
		wantNextM time.Month
		wantPrevY int
		wantPrevM time.Month
	}{
		{"mid year", 2024, time.June, 2024, time.July, 2024, time.May},
		{"december", 2024, time.December, 2025, time.January, 2024, time.November},
		{"january", 2024, time.January, 2024, time.February, 2023, time.December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m := NextMonth(tt.year, tt.month)
			if y != tt.wantNextY || m != tt.wantNextM {
				t.Errorf("NextMonth() = %d-%v, want %d-%v", y, m, tt.wantNextY, tt.wantNextM)
			}
			y, m = PrevMonth(tt.year, tt.month)
			if y != tt.wantPrevY || m != tt.wantPrevM {
				t.Errorf("PrevMonth() = %d-%v, want %d-%v", y, m, tt.wantPrevY, tt.wantPrevM)
			}
		})
	}
}
