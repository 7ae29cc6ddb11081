package services

import (
	"testing"
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
)

func TestMonthGridShape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		month    string
		wantDays int
	}{
		{name: "february starting on sunday", month: "2026-02-01", wantDays: 28},
		{name: "six row month", month: "2026-05-01", wantDays: 42},
		{name: "plain five row month", month: "2026-04-01", wantDays: 35},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			grid := MonthGrid(mustParseDay(t, testCase.month))

			if len(grid)%7 != 0 {
				t.Fatalf("expected a multiple of 7 days, got %d", len(grid))
			}
			if len(grid) != testCase.wantDays {
				t.Fatalf("expected %d days, got %d", testCase.wantDays, len(grid))
			}
			if grid[0].Weekday() != time.Sunday {
				t.Fatalf("expected grid to start on Sunday, got %s", grid[0].Weekday())
			}
			if grid[len(grid)-1].Weekday() != time.Saturday {
				t.Fatalf("expected grid to end on Saturday, got %s", grid[len(grid)-1].Weekday())
			}
		})
	}
}

func TestMonthGridCoversWholeMonth(t *testing.T) {
	t.Parallel()

	month := mustParseDay(t, "2026-05-15")
	grid := MonthGrid(month)

	seen := make(map[string]bool, len(grid))
	for _, day := range grid {
		seen[DayKey(day)] = true
	}
	for day := 1; day <= 31; day++ {
		key := time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if !seen[key] {
			t.Fatalf("expected grid to contain %s", key)
		}
	}
}

func TestWeekDays(t *testing.T) {
	t.Parallel()

	days := WeekDays(mustParseDay(t, "2026-03-11")) // a Wednesday

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if got := DayKey(days[0]); got != "2026-03-08" {
		t.Fatalf("expected week to start 2026-03-08, got %s", got)
	}
	if got := DayKey(days[6]); got != "2026-03-14" {
		t.Fatalf("expected week to end 2026-03-14, got %s", got)
	}
}

func TestRecordsOnDate(t *testing.T) {
	t.Parallel()

	events := []models.CalendarEvent{
		{Title: "a", Date: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)},
		{Title: "b", Date: time.Date(2026, 4, 2, 21, 0, 0, 0, time.UTC)},
		{Title: "c", Date: time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)},
	}

	matched := RecordsOnDate(events, mustParseDay(t, "2026-04-02"))
	if len(matched) != 2 {
		t.Fatalf("expected 2 records, got %d", len(matched))
	}
	if matched[0].Title != "a" || matched[1].Title != "b" {
		t.Fatalf("expected insertion order a, b; got %s, %s", matched[0].Title, matched[1].Title)
	}
}

func TestEventPreviewOrderingAndOverflow(t *testing.T) {
	t.Parallel()

	events := []models.CalendarEvent{
		{Title: "nine", Time: "09:00"},
		{Title: "eight", Time: "08:00"},
		{Title: "untimed"},
	}

	shown, overflow := EventPreview(events, 2)

	if len(shown) != 2 {
		t.Fatalf("expected 2 shown, got %d", len(shown))
	}
	if shown[0].Title != "eight" || shown[1].Title != "nine" {
		t.Fatalf("expected timed events first ascending, got %s, %s", shown[0].Title, shown[1].Title)
	}
	if overflow != 1 {
		t.Fatalf("expected overflow 1, got %d", overflow)
	}
}

func TestEventPreviewUntimedKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	events := []models.CalendarEvent{
		{Title: "first untimed"},
		{Title: "timed", Time: "12:00"},
		{Title: "second untimed"},
	}

	shown, overflow := EventPreview(events, 5)

	if overflow != 0 {
		t.Fatalf("expected no overflow, got %d", overflow)
	}
	want := []string{"timed", "first untimed", "second untimed"}
	for i, title := range want {
		if shown[i].Title != title {
			t.Fatalf("expected %s at position %d, got %s", title, i, shown[i].Title)
		}
	}
}

func TestEventPreviewEmptyAndZeroLimit(t *testing.T) {
	t.Parallel()

	shown, overflow := EventPreview([]models.CalendarEvent{}, 3)
	if len(shown) != 0 || overflow != 0 {
		t.Fatalf("expected empty preview, got %d shown, %d overflow", len(shown), overflow)
	}

	shown, overflow = EventPreview([]models.CalendarEvent{{Title: "x"}}, 0)
	if len(shown) != 0 || overflow != 1 {
		t.Fatalf("expected everything cut at limit 0, got %d shown, %d overflow", len(shown), overflow)
	}
}
