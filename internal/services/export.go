package services

import (
	"strings"
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
)

var ExportCSVHeaders = []string{"Date", "Flow", "Symptoms", "Notes"}

type ExportJSONEntry struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type ExportSummary struct {
	TotalEntries int    `json:"totalEntries"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
}

type ExportService struct {
	period *PeriodService
}

func NewExportService(period *PeriodService) *ExportService {
	return &ExportService{period: period}
}

// entriesInRange filters the sorted history to [from, to], either
// bound optional.
func (service *ExportService) entriesInRange(from, to *time.Time) []models.PeriodEntry {
	entries := make([]models.PeriodEntry, 0)
	for _, entry := range service.period.Entries() {
		if from != nil && DateOnly(entry.Date).Before(DateOnly(*from)) {
			continue
		}
		if to != nil && DateOnly(entry.Date).After(DateOnly(*to)) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// CSVRows renders the history as rows matching ExportCSVHeaders.
func (service *ExportService) CSVRows(from, to *time.Time) [][]string {
	entries := service.entriesInRange(from, to)
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			DayKey(entry.Date),
			entry.Flow,
			strings.Join(entry.Symptoms, "; "),
			entry.Notes,
		})
	}
	return rows
}

func (service *ExportService) JSONEntries(from, to *time.Time) []ExportJSONEntry {
	entries := service.entriesInRange(from, to)
	exported := make([]ExportJSONEntry, 0, len(entries))
	for _, entry := range entries {
		symptoms := entry.Symptoms
		if symptoms == nil {
			symptoms = []string{}
		}
		exported = append(exported, ExportJSONEntry{
			Date:     DayKey(entry.Date),
			Flow:     entry.Flow,
			Symptoms: symptoms,
			Notes:    entry.Notes,
		})
	}
	return exported
}

func (service *ExportService) Summary(from, to *time.Time) ExportSummary {
	entries := service.entriesInRange(from, to)
	summary := ExportSummary{TotalEntries: len(entries)}
	if len(entries) > 0 {
		summary.DateFrom = DayKey(entries[0].Date)
		summary.DateTo = DayKey(entries[len(entries)-1].Date)
	}
	return summary
}
