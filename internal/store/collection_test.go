package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/storage"
)

func sequentialIDs() IDSource {
	next := 0
	return func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}
}

func newEventCollection(st storage.Store, seed func() []models.CalendarEvent) *Collection[models.CalendarEvent, *models.CalendarEvent] {
	return NewCollection[models.CalendarEvent](storage.NamespaceEvents, st, sequentialIDs(), seed)
}

func TestCollectionAddAssignsIDs(t *testing.T) {
	t.Parallel()

	collection := newEventCollection(storage.NewMemoryStore(), nil)

	first := collection.Add(models.CalendarEvent{Title: "dentist"})
	second := collection.Add(models.CalendarEvent{Title: "practice"})

	if first.ID != "id-1" || second.ID != "id-2" {
		t.Fatalf("expected sequential ids, got %q and %q", first.ID, second.ID)
	}

	all := collection.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].Title != "dentist" || all[1].Title != "practice" {
		t.Fatalf("expected insertion order preserved, got %q then %q", all[0].Title, all[1].Title)
	}
}

func TestCollectionAllReturnsCopy(t *testing.T) {
	t.Parallel()

	collection := newEventCollection(storage.NewMemoryStore(), nil)
	collection.Add(models.CalendarEvent{Title: "dentist"})

	all := collection.All()
	all[0].Title = "mutated"

	got, ok := collection.Get("id-1")
	if !ok {
		t.Fatalf("expected record id-1")
	}
	if got.Title != "dentist" {
		t.Fatalf("expected stored record untouched, got %q", got.Title)
	}
}

func TestCollectionUpdate(t *testing.T) {
	t.Parallel()

	collection := newEventCollection(storage.NewMemoryStore(), nil)
	event := collection.Add(models.CalendarEvent{Title: "dentist"})

	event.Title = "dentist appointment"
	updated, err := collection.Update(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "dentist appointment" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}

	missing := models.CalendarEvent{Record: models.Record{ID: "nope"}}
	if _, err := collection.Update(missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollectionRemove(t *testing.T) {
	t.Parallel()

	st := storage.NewMemoryStore()
	collection := newEventCollection(st, nil)
	collection.Add(models.CalendarEvent{Title: "dentist"})
	collection.Add(models.CalendarEvent{Title: "practice"})

	collection.Remove("id-1")
	if collection.Len() != 1 {
		t.Fatalf("expected 1 record after remove, got %d", collection.Len())
	}
	if _, ok := collection.Get("id-1"); ok {
		t.Fatalf("expected id-1 gone")
	}

	// Removing an unknown id leaves the collection alone.
	collection.Remove("id-1")
	if collection.Len() != 1 {
		t.Fatalf("expected remove of absent id to be a no-op")
	}
}

func TestCollectionToggle(t *testing.T) {
	t.Parallel()

	collection := newEventCollection(storage.NewMemoryStore(), nil)
	collection.Add(models.CalendarEvent{Title: "dentist"})

	flipped, err := collection.Toggle("id-1", func(e *models.CalendarEvent) {
		e.Completed = !e.Completed
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flipped.Completed {
		t.Fatalf("expected completed after toggle")
	}

	if _, err := collection.Toggle("nope", func(e *models.CalendarEvent) {}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollectionSeedsAbsentNamespace(t *testing.T) {
	t.Parallel()

	st := storage.NewMemoryStore()
	collection := newEventCollection(st, func() []models.CalendarEvent {
		return []models.CalendarEvent{
			{Title: "welcome"},
			{Record: models.Record{ID: "fixed"}, Title: "kept"},
		}
	})

	if collection.Len() != 2 {
		t.Fatalf("expected seeded collection, got %d records", collection.Len())
	}
	if _, ok := collection.Get("id-1"); !ok {
		t.Fatalf("expected seed without id to get one assigned")
	}
	if _, ok := collection.Get("fixed"); !ok {
		t.Fatalf("expected seed id preserved")
	}

	// The seed is persisted, so a second hydration sees it without
	// running the seed again.
	again := newEventCollection(st, func() []models.CalendarEvent {
		t.Fatalf("seed must not run for a populated namespace")
		return nil
	})
	if again.Len() != 2 {
		t.Fatalf("expected rehydrated collection, got %d records", again.Len())
	}
}

func TestCollectionDiscardsCorruptPayload(t *testing.T) {
	t.Parallel()

	st := storage.NewMemoryStore()
	if err := st.Save(storage.NamespaceEvents, []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	collection := newEventCollection(st, nil)
	if collection.Len() != 0 {
		t.Fatalf("expected empty collection after corrupt payload, got %d", collection.Len())
	}
}

func TestCollectionRoundTripRevivesDates(t *testing.T) {
	t.Parallel()

	st := storage.NewMemoryStore()
	day := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)

	first := newEventCollection(st, nil)
	first.Add(models.CalendarEvent{Title: "dentist", Date: day, Time: "10:30"})

	second := newEventCollection(st, nil)
	got, ok := second.Get("id-1")
	if !ok {
		t.Fatalf("expected record to survive the round trip")
	}
	if !got.Date.Equal(day) {
		t.Fatalf("expected date %v, got %v", day, got.Date)
	}
	if got.Time != "10:30" {
		t.Fatalf("expected time preserved, got %q", got.Time)
	}
}

func TestSingletonDefaultsAndSet(t *testing.T) {
	t.Parallel()

	st := storage.NewMemoryStore()
	settings := NewSingleton(storage.NamespaceTabSettings, st, models.DefaultTabSettings)

	if !settings.Get().Period {
		t.Fatalf("expected defaults when the namespace is absent")
	}

	value := settings.Get()
	value.Period = false
	settings.Set(value)

	reloaded := NewSingleton(storage.NamespaceTabSettings, st, models.DefaultTabSettings)
	if reloaded.Get().Period {
		t.Fatalf("expected stored value to override defaults")
	}
}

func TestSingletonDiscardsCorruptPayload(t *testing.T) {
	t.Parallel()

	st := storage.NewMemoryStore()
	if err := st.Save(storage.NamespaceCycleData, []byte("nonsense")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cycle := NewSingleton(storage.NamespaceCycleData, st, models.DefaultCycleData)
	if cycle.Get().CycleLength != models.DefaultCycleLength {
		t.Fatalf("expected defaults after corrupt payload, got %d", cycle.Get().CycleLength)
	}
}
