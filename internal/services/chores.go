package services

import (
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
)

type ChoreService struct {
	organizer *Organizer
}

func NewChoreService(organizer *Organizer) *ChoreService {
	return &ChoreService{organizer: organizer}
}

func (service *ChoreService) ToggleDone(id string) (models.Chore, error) {
	return service.organizer.Chores.Toggle(id, func(chore *models.Chore) {
		chore.Done = !chore.Done
	})
}

// DueOn lists chores due on the given day: dated ones by SameDay plus
// recurring ones by frequency (daily always, weekly on the chore's
// weekday, monthly on the chore's day of month).
func (service *ChoreService) DueOn(day time.Time) []models.Chore {
	due := make([]models.Chore, 0)
	for _, chore := range service.organizer.Chores.All() {
		if choreDueOn(chore, day) {
			due = append(due, chore)
		}
	}
	return due
}

func choreDueOn(chore models.Chore, day time.Time) bool {
	switch chore.Frequency {
	case models.ChoreDaily:
		return !DateOnly(day).Before(DateOnly(chore.Date))
	case models.ChoreWeekly:
		return chore.Date.Weekday() == day.Weekday() && !DateOnly(day).Before(DateOnly(chore.Date))
	case models.ChoreMonthly:
		return chore.Date.Day() == day.Day() && !DateOnly(day).Before(DateOnly(chore.Date))
	default:
		return SameDay(chore.Date, day)
	}
}

// PointsEarned totals the points of every completed chore.
func (service *ChoreService) PointsEarned() int {
	total := 0
	for _, chore := range service.organizer.Chores.All() {
		if chore.Done {
			total += chore.Points
		}
	}
	return total
}
