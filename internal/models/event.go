package models

import "time"

const (
	EventKindReminder = "reminder"
	EventKindRoutine  = "routine"
)

const DefaultEventColor = "#3B82F6"

type CalendarEvent struct {
	Record
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	Completed   bool      `json:"completed"`
}

func (e CalendarEvent) Day() time.Time    { return e.Date }
func (e CalendarEvent) ClockTime() string { return e.Time }
