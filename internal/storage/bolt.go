package storage

import (
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("namespaces")

// BoltStore persists namespaces in a single-file bbolt database, one
// key per namespace.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (store *BoltStore) Load(namespace string) ([]byte, bool, error) {
	var payload []byte
	var found bool

	err := store.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(boltBucket).Get([]byte(namespace))
		if value == nil {
			return nil
		}
		found = true
		payload = make([]byte, len(value))
		copy(payload, value)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", namespace, err)
	}
	return payload, found, nil
}

func (store *BoltStore) Save(namespace string, payload []byte) error {
	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(namespace), payload)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", namespace, err)
	}
	return nil
}

func (store *BoltStore) Close() error {
	return store.db.Close()
}
