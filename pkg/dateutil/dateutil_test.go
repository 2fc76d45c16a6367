package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday returns Monday",
			input:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),  // Monday
		},
		{
			name:     "Monday returns same Monday",
			input:    time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday returns previous Monday",
			input:    time.Date(2025, 1, 19, 12, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Week crossing the year boundary",
			input:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-10-01")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.October || got.Day() != 1 {
		t.Errorf("ParseDate() = %v", got)
	}

	for _, bad := range []string{"", "2024-9-1", "01.10.2024", "2024-13-01"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error, got nil", bad)
		}
	}
}

func TestEachDay(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "Month boundary",
			from: "2024-09-29",
			to:   "2024-10-01",
			want: []string{"2024-09-29", "2024-09-30", "2024-10-01"},
		},
		{
			name: "Year boundary",
			from: "2024-12-30",
			to:   "2025-01-01",
			want: []string{"2024-12-30", "2024-12-31", "2025-01-01"},
		},
		{
			name: "Leap day",
			from: "2024-02-28",
			to:   "2024-03-01",
			want: []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name: "Single day",
			from: "2024-05-01",
			to:   "2024-05-01",
			want: []string{"2024-05-01"},
		},
		{
			name: "Reversed range is empty",
			from: "2024-05-02",
			to:   "2024-05-01",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, _ := ParseDate(tt.from)
			to, _ := ParseDate(tt.to)

			var got []string
			EachDay(from, to, func(d time.Time) {
				got = append(got, FormatDate(d))
			})

			if len(got) != len(tt.want) {
				t.Fatalf("EachDay() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("EachDay()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	if !IsWeekend(saturday) {
		t.Errorf("IsWeekend(Saturday) = false, want true")
	}
	if IsWeekend(monday) {
		t.Errorf("IsWeekend(Monday) = true, want false")
	}
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2025, 1, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)
	c := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)

	if !IsSameDay(a, b) {
		t.Errorf("IsSameDay(%v, %v) = false, want true", a, b)
	}
	if IsSameDay(a, c) {
		t.Errorf("IsSameDay(%v, %v) = true, want false", a, c)
	}
}
