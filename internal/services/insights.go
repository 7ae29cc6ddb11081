package services

import (
	"sort"

	"github.com/mimi0225/yourcalendar/internal/models"
)

// SymptomCount pairs a symptom tag with how many entries logged it.
type SymptomCount struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

// AverageCycleLength averages the gaps between consecutive cycle
// starts. With fewer than two starts the configured fallback wins.
func AverageCycleLength(entries []models.PeriodEntry, fallback int) float64 {
	runs := PeriodRuns(entries)
	if len(runs) < 2 {
		return float64(fallback)
	}
	gaps := make([]int, 0, len(runs)-1)
	for i := 1; i < len(runs); i++ {
		gaps = append(gaps, DaysBetween(runs[i-1].Start, runs[i].Start))
	}
	return averageInts(gaps)
}

// AveragePeriodLength averages the length of each contiguous flow
// run, falling back to the configured value when nothing is logged.
func AveragePeriodLength(entries []models.PeriodEntry, fallback int) float64 {
	runs := PeriodRuns(entries)
	if len(runs) == 0 {
		return float64(fallback)
	}
	lengths := make([]int, 0, len(runs))
	for _, run := range runs {
		lengths = append(lengths, run.Length)
	}
	return averageInts(lengths)
}

// TopSymptoms ranks symptom tags by how often they were logged,
// descending, ties broken by first occurrence across the entries.
// An empty history yields an empty slice.
func TopSymptoms(entries []models.PeriodEntry, n int) []SymptomCount {
	if n <= 0 {
		return []SymptomCount{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, entry := range entries {
		for _, symptom := range entry.Symptoms {
			if _, seen := firstSeen[symptom]; !seen {
				firstSeen[symptom] = order
				order++
			}
			counts[symptom]++
		}
	}

	ranked := make([]SymptomCount, 0, len(counts))
	for symptom, count := range counts {
		ranked = append(ranked, SymptomCount{Symptom: symptom, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Symptom] < firstSeen[ranked[j].Symptom]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
