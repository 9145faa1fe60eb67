// Package store keeps named tables in a bbolt database.
package store

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"juicer/frame"
	"juicer/tableio"
)

const bucketTables = "tables"

// ErrNotFound is returned when no table is stored under a name.
var ErrNotFound = errors.New("table not found")

// Store is a bbolt-backed collection of named tables. Tables are stored as
// YAML documents.
type Store struct {
	db *bolt.DB
}

// Open opens the database at path, creating it when it does not exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketTables))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initialize store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores t under name, replacing any table already stored there.
func (s *Store) Put(name string, t *frame.Table) error {
	if name == "" {
		return errors.New("store: empty table name")
	}
	data, err := tableio.MarshalYAML(t)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTables)).Put([]byte(name), data)
	})
}

// Get returns the table stored under name.
func (s *Store) Get(name string) (*frame.Table, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketTables)).Get([]byte(name))
		if v == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		// v is only valid inside the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	t, err := tableio.UnmarshalYAML(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "table %q", name)
	}
	return t, nil
}

// Delete removes the table stored under name. It fails with ErrNotFound if
// there is none.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketTables))
		if b.Get([]byte(name)) == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		return b.Delete([]byte(name))
	})
}

// Names returns the names of all stored tables in ascending order.
func (s *Store) Names() ([]string, error) {
	names := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTables)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
