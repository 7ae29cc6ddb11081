package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Notifier is the external notification surface. Delivery is
// fire-and-forget; the core only supplies titles and bodies.
type Notifier interface {
	Show(title, body string)
}

// LogNotifier writes reminders to the process log. The default
// collaborator when no OS surface is wired in.
type LogNotifier struct{}

func (LogNotifier) Show(title, body string) {
	log.Printf("reminder: %s (%s)", title, body)
}

// Reminder is one "happening tomorrow" line.
type Reminder struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type ReminderService struct {
	organizer *Organizer
	education *EducationService
	notifier  Notifier

	mu       sync.Mutex
	lastSent string
}

func NewReminderService(organizer *Organizer, education *EducationService, notifier Notifier) *ReminderService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ReminderService{
		organizer: organizer,
		education: education,
		notifier:  notifier,
	}
}

// UpcomingReminders collects everything dated tomorrow across the
// tracked modules. Pure read; scheduling lives in Start.
func (service *ReminderService) UpcomingReminders(now time.Time) []Reminder {
	tomorrow := DateOnly(now).AddDate(0, 0, 1)
	reminders := make([]Reminder, 0)

	for _, event := range RecordsOnDate(service.organizer.Events.All(), tomorrow) {
		body := "tomorrow"
		if event.Time != "" {
			body = "tomorrow at " + event.Time
		}
		reminders = append(reminders, Reminder{Title: event.Title, Body: body})
	}
	for _, item := range service.education.Upcoming() {
		if SameDay(item.Date, tomorrow) {
			reminders = append(reminders, Reminder{
				Title: item.Title,
				Body:  fmt.Sprintf("%s due tomorrow", item.Kind),
			})
		}
	}
	for _, event := range RecordsOnDate(service.organizer.SportEvents.All(), tomorrow) {
		title := event.Kind
		if team, found := service.organizer.SportTeams.Get(event.TeamID); found {
			title = fmt.Sprintf("%s: %s", team.Name, event.Kind)
		}
		body := "tomorrow"
		if event.Time != "" {
			body = "tomorrow at " + event.Time
		}
		reminders = append(reminders, Reminder{Title: title, Body: body})
	}

	return reminders
}

// Start delivers tomorrow's reminders once per calendar day, checking
// hourly. Runs until the context is cancelled.
func (service *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	go func() {
		defer ticker.Stop()

		service.deliver(time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.deliver(time.Now())
			}
		}
	}()
}

func (service *ReminderService) deliver(now time.Time) {
	service.mu.Lock()
	today := DayKey(now)
	if service.lastSent == today {
		service.mu.Unlock()
		return
	}
	service.lastSent = today
	service.mu.Unlock()

	for _, reminder := range service.UpcomingReminders(now) {
		service.notifier.Show(reminder.Title, reminder.Body)
	}
}
