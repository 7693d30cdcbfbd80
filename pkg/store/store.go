// Package store abstracts the persistent storage used by the interactive
// interpreter.
package store

import (
	"fmt"
	"io"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/aap-lang/aap/pkg/logutil"
	"github.com/aap-lang/aap/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

var initDB = map[string]func(*bolt.Tx) error{}

// DBStore is the permanent storage backend for the interpreter. It is
// not thread-safe. In particular, the store may be closed while
// another goroutine is waiting on it.
type DBStore interface {
	storedefs.Store
	io.Closer
}

type dbStore struct {
	db *bolt.DB
}

func dbWithDefaultOptions(dbname string) (*bolt.DB, error) {
	db, err := bolt.Open(dbname, 0o644,
		&bolt.Options{
			Timeout: time.Second,
		})
	return db, err
}

// NewStore creates a new store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := dbWithDefaultOptions(dbname)
	if err != nil {
		return nil, fmt.Errorf("open database %v: %w", dbname, err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Close closes the store, waiting for all operations to finish.
func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
