package services

import (
	"sort"
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
)

// PeriodRun is one contiguous stretch of logged flow days.
type PeriodRun struct {
	Start  time.Time
	Length int
}

// PeriodRuns detects the contiguous flow runs in the entry history,
// earliest first. Entries without flow are ignored.
func PeriodRuns(entries []models.PeriodEntry) []PeriodRun {
	flowDays := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		if entry.HasFlow() {
			flowDays = append(flowDays, DateOnly(entry.Date))
		}
	}
	if len(flowDays) == 0 {
		return nil
	}
	sort.Slice(flowDays, func(i, j int) bool {
		return flowDays[i].Before(flowDays[j])
	})

	runs := make([]PeriodRun, 0)
	current := PeriodRun{Start: flowDays[0], Length: 1}
	previous := flowDays[0]

	for _, day := range flowDays[1:] {
		if SameDay(day, previous) {
			continue
		}
		if DaysBetween(previous, day) == 1 {
			current.Length++
		} else {
			runs = append(runs, current)
			current = PeriodRun{Start: day, Length: 1}
		}
		previous = day
	}
	return append(runs, current)
}

// DeriveCycleData recomputes the derived cycle fields from the entry
// history. The configured lengths act as fallback until two cycle
// starts are observed, after which observed averages take over.
func DeriveCycleData(entries []models.PeriodEntry, configured models.CycleData) models.CycleData {
	derived := configured
	if derived.CycleLength <= 0 {
		derived.CycleLength = models.DefaultCycleLength
	}
	if derived.PeriodLength <= 0 {
		derived.PeriodLength = models.DefaultPeriodLength
	}
	derived.LastPeriodStart = nil
	derived.NextPeriodPrediction = nil

	runs := PeriodRuns(entries)
	if len(runs) == 0 {
		return derived
	}

	if len(runs) >= 2 {
		gaps := make([]int, 0, len(runs)-1)
		for i := 1; i < len(runs); i++ {
			gaps = append(gaps, DaysBetween(runs[i-1].Start, runs[i].Start))
		}
		lengths := make([]int, 0, len(runs))
		for _, run := range runs {
			lengths = append(lengths, run.Length)
		}
		if observed := roundAverage(gaps); observed > 0 {
			derived.CycleLength = observed
		}
		if observed := roundAverage(lengths); observed > 0 {
			derived.PeriodLength = observed
		}
	}

	last := runs[len(runs)-1].Start
	next := last.AddDate(0, 0, derived.CycleLength)
	derived.LastPeriodStart = &last
	derived.NextPeriodPrediction = &next
	return derived
}

// IsPeriodDay reports whether day is an actual period day: either a
// logged flow day, or within the period window opened by the last
// recorded start.
func IsPeriodDay(entries []models.PeriodEntry, cycle models.CycleData, day time.Time) bool {
	for _, entry := range entries {
		if entry.HasFlow() && SameDay(entry.Date, day) {
			return true
		}
	}
	if cycle.LastPeriodStart == nil {
		return false
	}
	start := DateOnly(*cycle.LastPeriodStart)
	return betweenInclusive(DateOnly(day), start, start.AddDate(0, 0, cycle.PeriodLength-1))
}

// PredictNextStart returns lastPeriodStart + cycleLength days. The
// second result is false when no period has been recorded.
func PredictNextStart(cycle models.CycleData) (time.Time, bool) {
	if cycle.NextPeriodPrediction != nil {
		return DateOnly(*cycle.NextPeriodPrediction), true
	}
	if cycle.LastPeriodStart == nil {
		return time.Time{}, false
	}
	cycleLength := cycle.CycleLength
	if cycleLength <= 0 {
		cycleLength = models.DefaultCycleLength
	}
	return DateOnly(*cycle.LastPeriodStart).AddDate(0, 0, cycleLength), true
}

// IsPredictedDay reports whether day falls in the predicted next
// period window. An actual period day is never predicted: logged data
// always wins over the forecast.
func IsPredictedDay(entries []models.PeriodEntry, cycle models.CycleData, day time.Time) bool {
	if IsPeriodDay(entries, cycle, day) {
		return false
	}
	next, ok := PredictNextStart(cycle)
	if !ok {
		return false
	}
	periodLength := cycle.PeriodLength
	if periodLength <= 0 {
		periodLength = models.DefaultPeriodLength
	}
	return betweenInclusive(DateOnly(day), next, next.AddDate(0, 0, periodLength-1))
}

func betweenInclusive(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func roundAverage(values []int) int {
	return int(averageInts(values) + 0.5)
}
