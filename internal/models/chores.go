package models

import "time"

const (
	ChoreDaily   = "daily"
	ChoreWeekly  = "weekly"
	ChoreMonthly = "monthly"
)

type Chore struct {
	Record
	Name       string    `json:"name"`
	Frequency  string    `json:"frequency"`
	Points     int       `json:"points"`
	Date       time.Time `json:"date"`
	AssignedTo string    `json:"assignedTo,omitempty"`
	Done       bool      `json:"done"`
}

func (c Chore) Day() time.Time { return c.Date }
