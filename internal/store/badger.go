package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore implements Store on an embedded Badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) the database at dirPath.
func OpenBadger(dirPath string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dirPath).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", dirPath, err)
	}
	return &BadgerStore{db: db}, nil
}

// Put serializes value and stores it under key.
func (s *BadgerStore) Put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Get decodes the stored value into out. A missing key or a value that
// no longer decodes reports absent; the next Put overwrites it.
func (s *BadgerStore) Get(key string, out any) (bool, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		log.Printf("[store] read failed for %s, treating as absent: %v", key, err)
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("[store] discarding corrupt value for %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *BadgerStore) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close flushes and closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
