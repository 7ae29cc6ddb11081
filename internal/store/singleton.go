package store

import (
	"encoding/json"
	"log"

	"github.com/mimi0225/yourcalendar/internal/storage"
)

// Singleton persists one value per namespace. Used for the cycle
// configuration and the tab settings, which are not collections.
type Singleton[T any] struct {
	namespace string
	storage   storage.Store
	value     T
}

func NewSingleton[T any](namespace string, st storage.Store, defaults func() T) *Singleton[T] {
	singleton := &Singleton[T]{
		namespace: namespace,
		storage:   st,
		value:     defaults(),
	}

	payload, found, err := st.Load(namespace)
	if err != nil {
		log.Printf("storage load %s failed, using defaults: %v", namespace, err)
		return singleton
	}
	if !found {
		return singleton
	}

	value := defaults()
	if err := json.Unmarshal(payload, &value); err != nil {
		log.Printf("corrupt data in %s, using defaults: %v", namespace, err)
		return singleton
	}
	singleton.value = value
	return singleton
}

func (s *Singleton[T]) Get() T { return s.value }

func (s *Singleton[T]) Set(value T) {
	s.value = value
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("serialize %s failed: %v", s.namespace, err)
		return
	}
	if err := s.storage.Save(s.namespace, payload); err != nil {
		log.Printf("persist %s failed, session is not durable: %v", s.namespace, err)
	}
}
