package services

import (
	"errors"
	"testing"

	"github.com/mimi0225/yourcalendar/internal/models"
)

func TestChoreDueOn(t *testing.T) {
	t.Parallel()

	organizer := newTestOrganizer(t)
	service := NewChoreService(organizer)

	// 2026-05-04 is a Monday.
	organizer.Chores.Add(models.Chore{Name: "Dishes", Frequency: models.ChoreDaily, Points: 5, Date: mustParseDay(t, "2026-05-04")})
	organizer.Chores.Add(models.Chore{Name: "Laundry", Frequency: models.ChoreWeekly, Points: 10, Date: mustParseDay(t, "2026-05-04")})
	organizer.Chores.Add(models.Chore{Name: "Rent check", Frequency: models.ChoreMonthly, Points: 0, Date: mustParseDay(t, "2026-05-04")})

	cases := []struct {
		name    string
		day     string
		wantDue []string
	}{
		{name: "start day", day: "2026-05-04", wantDue: []string{"Dishes", "Laundry", "Rent check"}},
		{name: "next day only daily", day: "2026-05-05", wantDue: []string{"Dishes"}},
		{name: "next monday daily and weekly", day: "2026-05-11", wantDue: []string{"Dishes", "Laundry"}},
		{name: "next month fourth", day: "2026-06-04", wantDue: []string{"Dishes", "Rent check"}},
		{name: "before start nothing", day: "2026-05-01", wantDue: []string{}},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			due := service.DueOn(mustParseDay(t, testCase.day))
			if len(due) != len(testCase.wantDue) {
				t.Fatalf("expected %d chores due, got %d", len(testCase.wantDue), len(due))
			}
			for i, name := range testCase.wantDue {
				if due[i].Name != name {
					t.Fatalf("expected %s at position %d, got %s", name, i, due[i].Name)
				}
			}
		})
	}
}

func TestToggleDoneAndPoints(t *testing.T) {
	t.Parallel()

	organizer := newTestOrganizer(t)
	service := NewChoreService(organizer)

	dishes := organizer.Chores.Add(models.Chore{Name: "Dishes", Frequency: models.ChoreDaily, Points: 5, Date: mustParseDay(t, "2026-05-04")})
	organizer.Chores.Add(models.Chore{Name: "Laundry", Frequency: models.ChoreWeekly, Points: 10, Date: mustParseDay(t, "2026-05-04")})

	toggled, err := service.ToggleDone(dishes.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Done {
		t.Fatalf("expected chore marked done")
	}
	if got := service.PointsEarned(); got != 5 {
		t.Fatalf("expected 5 points earned, got %d", got)
	}

	if _, err := service.ToggleDone("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
