// Package store implements the write-through record collection every
// tracker module is built on. A collection owns one storage namespace
// and serializes its full contents after each mutation.
package store

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/storage"
)

var ErrNotFound = errors.New("record not found")

// IDSource produces fresh record ids. Injected so tests can supply a
// deterministic sequence.
type IDSource func() string

func UUIDSource() string { return uuid.NewString() }

type Collection[T any, PT interface {
	*T
	models.Identified
}] struct {
	namespace string
	storage   storage.Store
	newID     IDSource
	records   []T
}

// NewCollection hydrates the namespace from storage. An absent
// namespace is seeded (ids assigned if the seed left them empty);
// corrupt stored data is logged and discarded in favor of an empty
// collection. Hydration never fails the caller.
func NewCollection[T any, PT interface {
	*T
	models.Identified
}](namespace string, st storage.Store, newID IDSource, seed func() []T) *Collection[T, PT] {
	if newID == nil {
		newID = UUIDSource
	}
	collection := &Collection[T, PT]{
		namespace: namespace,
		storage:   st,
		newID:     newID,
		records:   make([]T, 0),
	}

	payload, found, err := st.Load(namespace)
	if err != nil {
		log.Printf("storage load %s failed, starting empty: %v", namespace, err)
		return collection
	}
	if !found {
		if seed != nil {
			collection.records = seed()
			for i := range collection.records {
				meta := PT(&collection.records[i]).Meta()
				if meta.ID == "" {
					meta.ID = newID()
				}
			}
			collection.persist()
		}
		return collection
	}

	records := make([]T, 0)
	if err := json.Unmarshal(payload, &records); err != nil {
		log.Printf("corrupt data in %s, discarding: %v", namespace, err)
		return collection
	}
	collection.records = records
	return collection
}

// Add assigns a fresh id, stores the record and persists the
// collection. The stored record is returned.
func (c *Collection[T, PT]) Add(record T) T {
	PT(&record).Meta().ID = c.newID()
	c.records = append(c.records, record)
	c.persist()
	return record
}

// Update replaces the stored record with the same id. Returns
// ErrNotFound when no record matches.
func (c *Collection[T, PT]) Update(record T) (T, error) {
	id := PT(&record).Meta().ID
	for i := range c.records {
		if PT(&c.records[i]).Meta().ID == id {
			c.records[i] = record
			c.persist()
			return record, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Remove deletes by id. Removing an absent id is a no-op and does not
// rewrite storage.
func (c *Collection[T, PT]) Remove(id string) {
	for i := range c.records {
		if PT(&c.records[i]).Meta().ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			c.persist()
			return
		}
	}
}

// Toggle applies flip to the record with the given id and persists.
// Callers pass a closure flipping the boolean they care about.
func (c *Collection[T, PT]) Toggle(id string, flip func(*T)) (T, error) {
	for i := range c.records {
		if PT(&c.records[i]).Meta().ID == id {
			flip(&c.records[i])
			c.persist()
			return c.records[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Get returns the record with the given id.
func (c *Collection[T, PT]) Get(id string) (T, bool) {
	for i := range c.records {
		if PT(&c.records[i]).Meta().ID == id {
			return c.records[i], true
		}
	}
	var zero T
	return zero, false
}

// All returns the records in insertion order. The slice is a copy;
// callers sort and filter freely.
func (c *Collection[T, PT]) All() []T {
	records := make([]T, len(c.records))
	copy(records, c.records)
	return records
}

// Replace swaps the whole collection and persists. Used by cascade
// deletes that rewrite dependent collections.
func (c *Collection[T, PT]) Replace(records []T) {
	c.records = make([]T, len(records))
	copy(c.records, records)
	c.persist()
}

func (c *Collection[T, PT]) Len() int { return len(c.records) }

// persist writes the collection through to storage. Failures are
// logged and swallowed: the session keeps working in memory only.
func (c *Collection[T, PT]) persist() {
	payload, err := json.Marshal(c.records)
	if err != nil {
		log.Printf("serialize %s failed: %v", c.namespace, err)
		return
	}
	if err := c.storage.Save(c.namespace, payload); err != nil {
		log.Printf("persist %s failed, session is not durable: %v", c.namespace, err)
	}
}
