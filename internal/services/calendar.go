package services

import (
	"sort"
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
)

// RecordsOnDate filters records to those falling on the given
// calendar day. Linear scan; collections stay in the hundreds.
func RecordsOnDate[T models.Dated](records []T, day time.Time) []T {
	matched := make([]T, 0)
	for _, record := range records {
		if SameDay(record.Day(), day) {
			matched = append(matched, record)
		}
	}
	return matched
}

// MonthGrid enumerates the visible days of the month calendar: the
// Sunday-start week containing the 1st through the week containing
// the last day. The result length is always a multiple of 7.
func MonthGrid(month time.Time) []time.Time {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	days := make([]time.Time, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// WeekDays returns the 7 days of the Sunday-start week containing the
// anchor date.
func WeekDays(anchor time.Time) []time.Time {
	weekStart := DateOnly(anchor).AddDate(0, 0, -int(anchor.Weekday()))
	days := make([]time.Time, 0, 7)
	for offset := 0; offset < 7; offset++ {
		days = append(days, weekStart.AddDate(0, 0, offset))
	}
	return days
}

// EventPreview picks up to limit records for a compact day cell and
// reports how many were cut. Timed records come first, ascending by
// clock string; untimed records keep insertion order behind them.
func EventPreview[T models.Timed](records []T, limit int) ([]T, int) {
	if limit < 0 {
		limit = 0
	}

	ordered := make([]T, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		left, right := ordered[i].ClockTime(), ordered[j].ClockTime()
		if left == "" || right == "" {
			return right == "" && left != ""
		}
		return left < right
	})

	if len(ordered) <= limit {
		return ordered, 0
	}
	return ordered[:limit], len(ordered) - limit
}
