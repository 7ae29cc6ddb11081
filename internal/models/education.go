package models

import "time"

type Class struct {
	Record
	Name     string `json:"name"`
	Teacher  string `json:"teacher,omitempty"`
	Room     string `json:"room,omitempty"`
	Color    string `json:"color,omitempty"`
	Schedule string `json:"schedule,omitempty"`
}

const (
	WorkKindAssignment = "assignment"
	WorkKindTest       = "test"
	WorkKindProject    = "project"
)

// WorkItem is the shared shape of assignments, tests and projects.
// The three kinds live in separate collections but share one type.
type WorkItem struct {
	Record
	ClassID     string    `json:"classId"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
}

func (w WorkItem) Day() time.Time { return w.Date }
