package services

import (
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/shopspring/decimal"
)

// Seed data fills a namespace the first time it is opened, so the
// client has content before the user adds anything. Stored data is
// never overwritten.

func SeedEvents() []models.CalendarEvent {
	today := DateOnly(time.Now())
	return []models.CalendarEvent{
		{
			Title: "Morning routine",
			Kind:  models.EventKindRoutine,
			Date:  today,
			Time:  "07:30",
			Color: models.DefaultEventColor,
		},
		{
			Title:       "Water the plants",
			Kind:        models.EventKindReminder,
			Date:        today.AddDate(0, 0, 1),
			Description: "Kitchen and balcony",
			Color:       "#10B981",
		},
	}
}

func SeedCategories() []models.BudgetCategory {
	return []models.BudgetCategory{
		{Name: "Food", Color: "#F59E0B", MonthlyLimit: decimal.NewFromInt(300)},
		{Name: "Transport", Color: "#3B82F6", MonthlyLimit: decimal.NewFromInt(120)},
		{Name: "Fun", Color: "#EC4899", MonthlyLimit: decimal.NewFromInt(100)},
		{Name: "Other", Color: "#6B7280", MonthlyLimit: decimal.Zero},
	}
}

func SeedChores() []models.Chore {
	today := DateOnly(time.Now())
	return []models.Chore{
		{Name: "Dishes", Frequency: models.ChoreDaily, Points: 5, Date: today},
		{Name: "Laundry", Frequency: models.ChoreWeekly, Points: 10, Date: today},
		{Name: "Deep clean room", Frequency: models.ChoreMonthly, Points: 25, Date: today},
	}
}
