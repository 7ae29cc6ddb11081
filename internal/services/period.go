package services

import (
	"sort"
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
)

// PeriodInput is the caller-facing shape of one logged day. The form
// layer validates it before it reaches the service.
type PeriodInput struct {
	Flow     string   `json:"flow"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

// CycleStats is the derived summary the stats view renders.
type CycleStats struct {
	CycleData           models.CycleData `json:"cycleData"`
	AverageCycleLength  float64          `json:"averageCycleLength"`
	AveragePeriodLength float64          `json:"averagePeriodLength"`
	TopSymptoms         []SymptomCount   `json:"topSymptoms"`
	EntryCount          int              `json:"entryCount"`
}

type PeriodService struct {
	organizer *Organizer
}

func NewPeriodService(organizer *Organizer) *PeriodService {
	return &PeriodService{organizer: organizer}
}

// Entries returns the logged history sorted ascending by day.
func (service *PeriodService) Entries() []models.PeriodEntry {
	entries := service.organizer.PeriodEntries.All()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// UpsertDay logs one day. At most one entry exists per calendar day:
// logging a day that already has an entry merges into it instead of
// inserting a duplicate.
func (service *PeriodService) UpsertDay(day time.Time, input PeriodInput) models.PeriodEntry {
	flow := input.Flow
	if flow == "" {
		flow = models.FlowNone
	}
	symptoms := input.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	for _, existing := range service.organizer.PeriodEntries.All() {
		if SameDay(existing.Date, day) {
			existing.Flow = flow
			existing.Symptoms = symptoms
			existing.Notes = input.Notes
			updated, err := service.organizer.PeriodEntries.Update(existing)
			if err != nil {
				break
			}
			service.refreshCycle()
			return updated
		}
	}

	entry := service.organizer.PeriodEntries.Add(models.PeriodEntry{
		Date:     DateOnly(day),
		Flow:     flow,
		Symptoms: symptoms,
		Notes:    input.Notes,
	})
	service.refreshCycle()
	return entry
}

// DeleteDay removes the entry for the given calendar day, if any.
func (service *PeriodService) DeleteDay(day time.Time) {
	for _, existing := range service.organizer.PeriodEntries.All() {
		if SameDay(existing.Date, day) {
			service.organizer.PeriodEntries.Remove(existing.ID)
			service.refreshCycle()
			return
		}
	}
}

// EntryOn returns the entry logged for the given day.
func (service *PeriodService) EntryOn(day time.Time) (models.PeriodEntry, bool) {
	for _, existing := range service.organizer.PeriodEntries.All() {
		if SameDay(existing.Date, day) {
			return existing, true
		}
	}
	return models.PeriodEntry{}, false
}

// CycleData returns the current derived cycle state.
func (service *PeriodService) CycleData() models.CycleData {
	return service.organizer.Cycle.Get()
}

// SaveCycleSettings stores new configured lengths and rederives the
// date fields from the entry history.
func (service *PeriodService) SaveCycleSettings(cycleLength, periodLength int) models.CycleData {
	configured := service.organizer.Cycle.Get()
	if cycleLength > 0 {
		configured.CycleLength = cycleLength
	}
	if periodLength > 0 {
		configured.PeriodLength = periodLength
	}
	derived := DeriveCycleData(service.Entries(), configured)
	service.organizer.Cycle.Set(derived)
	return derived
}

// Stats assembles the derived insight summary for the stats view.
func (service *PeriodService) Stats() CycleStats {
	entries := service.Entries()
	cycle := service.organizer.Cycle.Get()
	return CycleStats{
		CycleData:           cycle,
		AverageCycleLength:  AverageCycleLength(entries, cycle.CycleLength),
		AveragePeriodLength: AveragePeriodLength(entries, cycle.PeriodLength),
		TopSymptoms:         TopSymptoms(entries, 3),
		EntryCount:          len(entries),
	}
}

// IsPeriodDay and IsPredictedDay expose the predictor over the
// service's own state, for calendar rendering.
func (service *PeriodService) IsPeriodDay(day time.Time) bool {
	return IsPeriodDay(service.Entries(), service.organizer.Cycle.Get(), day)
}

func (service *PeriodService) IsPredictedDay(day time.Time) bool {
	return IsPredictedDay(service.Entries(), service.organizer.Cycle.Get(), day)
}

// refreshCycle rederives lastPeriodStart and the next prediction
// whenever the entry set changes.
func (service *PeriodService) refreshCycle() {
	derived := DeriveCycleData(service.Entries(), service.organizer.Cycle.Get())
	service.organizer.Cycle.Set(derived)
}
