package models

import "time"

type SportTeam struct {
	Record
	Name   string `json:"name"`
	Sport  string `json:"sport,omitempty"`
	Season string `json:"season,omitempty"`
	Color  string `json:"color,omitempty"`
}

const (
	SportEventGame       = "game"
	SportEventPractice   = "practice"
	SportEventTournament = "tournament"
)

type SportEvent struct {
	Record
	TeamID   string    `json:"teamId"`
	Kind     string    `json:"kind"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time,omitempty"`
	Location string    `json:"location,omitempty"`
	Opponent string    `json:"opponent,omitempty"`
}

func (e SportEvent) Day() time.Time    { return e.Date }
func (e SportEvent) ClockTime() string { return e.Time }
