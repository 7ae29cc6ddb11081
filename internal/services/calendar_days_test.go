package services

import (
	"testing"

	"github.com/mimi0225/yourcalendar/internal/models"
)

func TestBuildMonthDayStates(t *testing.T) {
	t.Parallel()

	organizer := newTestOrganizer(t)
	period := NewPeriodService(organizer)
	now := mustParseDay(t, "2026-05-15")

	organizer.Events.Add(models.CalendarEvent{Title: "Dentist", Date: mustParseDay(t, "2026-05-20")})
	class := organizer.Classes.Add(models.Class{Name: "Math"})
	organizer.Assignments.Add(models.WorkItem{ClassID: class.ID, Title: "Worksheet", Kind: models.WorkKindAssignment, Date: mustParseDay(t, "2026-05-20")})
	period.UpsertDay(mustParseDay(t, "2026-05-10"), PeriodInput{Flow: models.FlowMedium})

	states := BuildMonthDayStates(organizer, period, mustParseDay(t, "2026-05-01"), now)

	if len(states)%7 != 0 {
		t.Fatalf("expected a multiple of 7 cells, got %d", len(states))
	}

	byDate := make(map[string]CalendarDayState, len(states))
	for _, state := range states {
		byDate[state.Date] = state
	}

	if got := byDate["2026-05-20"].RecordCount; got != 2 {
		t.Fatalf("expected 2 records on 2026-05-20, got %d", got)
	}
	if !byDate["2026-05-15"].IsToday {
		t.Fatalf("expected 2026-05-15 marked today")
	}
	if !byDate["2026-05-10"].IsPeriod {
		t.Fatalf("expected 2026-05-10 marked period")
	}
	if byDate["2026-05-10"].IsPredicted {
		t.Fatalf("actual period day must not be predicted")
	}
	if !byDate["2026-05-14"].IsPeriod {
		t.Fatalf("expected the configured period window marked through 2026-05-14")
	}
	if byDate["2026-04-30"].InMonth {
		t.Fatalf("expected leading cell outside the month")
	}

	// Prediction opens one configured cycle after the logged start,
	// which lands in June.
	june := BuildMonthDayStates(organizer, period, mustParseDay(t, "2026-06-01"), now)
	juneByDate := make(map[string]CalendarDayState, len(june))
	for _, state := range june {
		juneByDate[state.Date] = state
	}
	if !juneByDate["2026-06-07"].IsPredicted {
		t.Fatalf("expected 2026-06-07 marked predicted")
	}
	if juneByDate["2026-06-12"].IsPredicted {
		t.Fatalf("expected prediction window closed after 5 days")
	}
}
