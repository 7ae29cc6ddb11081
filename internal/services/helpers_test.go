package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/mimi0225/yourcalendar/internal/storage"
	"github.com/mimi0225/yourcalendar/internal/store"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

// sequentialIDs yields "id-1", "id-2", ... so tests can assert on ids.
func sequentialIDs() store.IDSource {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
}

// newTestOrganizer builds an organizer over in-memory storage with
// deterministic ids and no seed data in the collections under test.
func newTestOrganizer(t *testing.T) *Organizer {
	t.Helper()
	memory := storage.NewMemoryStore()
	// Pre-save empty namespaces that would otherwise seed samples.
	for _, namespace := range []string{storage.NamespaceEvents, storage.NamespaceChores, storage.NamespaceBudgetCategories} {
		if err := memory.Save(namespace, []byte("[]")); err != nil {
			t.Fatalf("prepare namespace %s: %v", namespace, err)
		}
	}
	return NewOrganizer(memory, sequentialIDs())
}
