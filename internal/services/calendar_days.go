package services

import "time"

// CalendarDayState is one cell of the month grid, with everything the
// client needs to style it.
type CalendarDayState struct {
	Date        string `json:"date"`
	Day         int    `json:"day"`
	InMonth     bool   `json:"inMonth"`
	IsToday     bool   `json:"isToday"`
	IsPeriod    bool   `json:"isPeriod"`
	IsPredicted bool   `json:"isPredicted"`
	RecordCount int    `json:"recordCount"`
}

// BuildMonthDayStates walks the month grid and marks each day with
// its record count and cycle flags. Predicted never overrides actual.
func BuildMonthDayStates(organizer *Organizer, period *PeriodService, month, now time.Time) []CalendarDayState {
	entries := period.Entries()
	cycle := period.CycleData()

	counts := make(map[string]int)
	for _, event := range organizer.Events.All() {
		counts[DayKey(event.Date)]++
	}
	for _, item := range organizer.Assignments.All() {
		counts[DayKey(item.Date)]++
	}
	for _, item := range organizer.Tests.All() {
		counts[DayKey(item.Date)]++
	}
	for _, item := range organizer.Projects.All() {
		counts[DayKey(item.Date)]++
	}
	for _, event := range organizer.SportEvents.All() {
		counts[DayKey(event.Date)]++
	}

	todayKey := DayKey(now)
	states := make([]CalendarDayState, 0, 42)
	for _, day := range MonthGrid(month) {
		key := DayKey(day)
		states = append(states, CalendarDayState{
			Date:        key,
			Day:         day.Day(),
			InMonth:     day.Month() == month.Month(),
			IsToday:     key == todayKey,
			IsPeriod:    IsPeriodDay(entries, cycle, day),
			IsPredicted: IsPredictedDay(entries, cycle, day),
			RecordCount: counts[key],
		})
	}
	return states
}
