package services

import (
	"sort"
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/storage"
)

type SportsService struct {
	organizer *Organizer
}

func NewSportsService(organizer *Organizer) *SportsService {
	return &SportsService{organizer: organizer}
}

// RemoveTeam deletes the team; the cascade table removes its events.
func (service *SportsService) RemoveTeam(teamID string) error {
	if _, found := service.organizer.SportTeams.Get(teamID); !found {
		return ErrTeamNotFound
	}
	if err := service.organizer.Cascade(storage.NamespaceSportTeams, teamID); err != nil {
		return err
	}
	service.organizer.SportTeams.Remove(teamID)
	return nil
}

// Upcoming lists the team's events from the given day onward, sorted
// by day then clock time. An empty teamID covers every team.
func (service *SportsService) Upcoming(teamID string, from time.Time) []models.SportEvent {
	fromDay := DateOnly(from)
	events := make([]models.SportEvent, 0)
	for _, event := range service.organizer.SportEvents.All() {
		if teamID != "" && event.TeamID != teamID {
			continue
		}
		if !DateOnly(event.Date).Before(fromDay) {
			events = append(events, event)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if !SameDay(events[i].Date, events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Time < events[j].Time
	})
	return events
}
