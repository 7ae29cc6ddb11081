package api

import (
	"net/http"
	"testing"
)

func TestMonthGridShape(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/calendar/month?year=2026&month=5", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	cells := []map[string]any{}
	decodeBody(t, response, &cells)
	if len(cells) == 0 || len(cells)%7 != 0 {
		t.Fatalf("expected a whole number of weeks, got %d cells", len(cells))
	}
	if cells[0]["date"] != "2026-04-26" {
		t.Fatalf("expected grid to open on the Sunday before May, got %v", cells[0]["date"])
	}
}

func TestMonthGridRejectsBadMonth(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/calendar/month?year=2026&month=13", nil)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestWeekDaysAroundAnchor(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/calendar/week?date=2026-03-11", nil)
	payload := struct {
		Days []string `json:"days"`
	}{}
	decodeBody(t, response, &payload)
	if len(payload.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(payload.Days))
	}
	if payload.Days[0] != "2026-03-08" || payload.Days[6] != "2026-03-14" {
		t.Fatalf("expected week 2026-03-08..2026-03-14, got %v", payload.Days)
	}
}

func TestDayRecordsGatherAllModules(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/events", map[string]any{
		"title": "dentist",
		"date":  "2026-05-20T00:00:00Z",
		"time":  "10:30",
	})
	response.Body.Close()
	response = doJSON(t, app, http.MethodPost, "/api/events", map[string]any{
		"title": "walk dog",
		"date":  "2026-05-20T00:00:00Z",
	})
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/calendar/day?date=2026-05-20&limit=1", nil)
	payload := struct {
		Events   []map[string]any `json:"events"`
		Preview  []map[string]any `json:"preview"`
		Overflow int              `json:"overflow"`
	}{}
	decodeBody(t, response, &payload)
	if len(payload.Events) != 2 {
		t.Fatalf("expected 2 events on the day, got %d", len(payload.Events))
	}
	if len(payload.Preview) != 1 || payload.Overflow != 1 {
		t.Fatalf("expected preview of 1 with overflow 1, got %d and %d", len(payload.Preview), payload.Overflow)
	}
	if payload.Preview[0]["title"] != "dentist" {
		t.Fatalf("expected the timed event previewed first, got %v", payload.Preview[0]["title"])
	}
}

func TestChoreDueListing(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/chores", map[string]any{
		"name":      "dishes",
		"frequency": "daily",
		"points":    5,
		"date":      "2026-05-01T00:00:00Z",
	})
	chore := map[string]any{}
	decodeBody(t, response, &chore)
	choreID, _ := chore["id"].(string)

	response = doJSON(t, app, http.MethodGet, "/api/chores/due?date=2026-05-04", nil)
	payload := struct {
		Due    []map[string]any `json:"due"`
		Points int              `json:"points"`
	}{}
	decodeBody(t, response, &payload)
	if len(payload.Due) != 1 {
		t.Fatalf("expected daily chore due, got %d", len(payload.Due))
	}
	if payload.Points != 0 {
		t.Fatalf("expected no points before completion, got %d", payload.Points)
	}

	response = doJSON(t, app, http.MethodPost, "/api/chores/"+choreID+"/toggle", nil)
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/chores/due?date=2026-05-04", nil)
	decodeBody(t, response, &payload)
	if payload.Points != 5 {
		t.Fatalf("expected 5 points after completion, got %d", payload.Points)
	}
}
