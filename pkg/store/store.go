// Package store implements the command history of the interactive mode,
// persisted in a bbolt database.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/keyplexex/itmoscript/pkg/logutil"
	"github.com/keyplexex/itmoscript/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

const bucketCmd = "cmd"

// DBStore is a storedefs.Store backed by a database file. Operations may be
// called from multiple goroutines; Close waits for those in progress.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
	wg sync.WaitGroup
}

// NewStore opens the database at dbname, creating it if needed. It fails if
// the file stays locked by another process for a second.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	st, err := NewStoreFromDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// NewStoreFromDB creates a DBStore from an open database, creating the buckets
// it uses.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store at", db.Path())
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize command history: %w", err)
	}
	return &dbStore{db: db}, nil
}

// Close waits for all outstanding operations to finish, and closes the
// database.
func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.wg.Wait()
	logger.Println("closing store")
	return s.db.Close()
}

func (s *dbStore) view(f func(b *bolt.Bucket) error) error {
	s.wg.Add(1)
	defer s.wg.Done()
	return s.db.View(func(tx *bolt.Tx) error { return f(tx.Bucket([]byte(bucketCmd))) })
}

func (s *dbStore) update(f func(b *bolt.Bucket) error) error {
	s.wg.Add(1)
	defer s.wg.Done()
	return s.db.Update(func(tx *bolt.Tx) error { return f(tx.Bucket([]byte(bucketCmd))) })
}
