package models

import "time"

const (
	FlowNone   = "none"
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

type PeriodEntry struct {
	Record
	Date     time.Time `json:"date"`
	Flow     string    `json:"flow"`
	Symptoms []string  `json:"symptoms"`
	Notes    string    `json:"notes,omitempty"`
}

func (e PeriodEntry) Day() time.Time { return e.Date }

// HasFlow reports whether the entry records an actual period day.
func (e PeriodEntry) HasFlow() bool {
	return e.Flow != "" && e.Flow != FlowNone
}

// CycleData is the configured-plus-derived cycle state. The length
// fields are user defaults; the date fields are recomputed from the
// entry history whenever it changes.
type CycleData struct {
	CycleLength          int        `json:"cycleLength"`
	PeriodLength         int        `json:"periodLength"`
	LastPeriodStart      *time.Time `json:"lastPeriodStart,omitempty"`
	NextPeriodPrediction *time.Time `json:"nextPeriodPrediction,omitempty"`
}

func DefaultCycleData() CycleData {
	return CycleData{
		CycleLength:  DefaultCycleLength,
		PeriodLength: DefaultPeriodLength,
	}
}

func DefaultSymptoms() []string {
	return []string{
		"Cramps",
		"Headache",
		"Mood swings",
		"Bloating",
		"Fatigue",
		"Breast tenderness",
		"Acne",
		"Back pain",
		"Nausea",
		"Spotting",
		"Irritability",
		"Insomnia",
		"Food cravings",
	}
}
