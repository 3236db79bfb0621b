// Package report - BadgerDB-backed run history.
package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// Store errors
var (
	ErrNotFound = errors.New("report: no such report")
	ErrClosed   = errors.New("report: store is closed")
)

// runPrefix namespaces report keys inside the badger keyspace.
const runPrefix = "run:"

// Store persists doctor reports in a BadgerDB database.
//
// Keys are "run:<unix-nanos>" so lexicographic key order is chronological
// order. The store is safe for concurrent use; badger handles locking.
//
// Example:
//
//	store, err := report.Open("/home/user/.config/gpucheck/history")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	store.Save(rep)
//	recent, _ := store.List()
type Store struct {
	db     *badger.DB
	closed bool
}

// Open opens (or creates) a report history at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logging is noise in a CLI tool

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("report: opening history at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral history. Used by tests so they exercise
// the same code path as the persistent store.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("report: opening in-memory history: %w", err)
	}
	return &Store{db: db}, nil
}

// Save assigns the report an ID (if it has none) and persists it.
func (s *Store) Save(r *Report) error {
	if s.closed {
		return ErrClosed
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.ID == "" {
		r.ID = fmt.Sprintf("%d", r.CreatedAt.UnixNano())
	}

	data, err := serializeReport(r)
	if err != nil {
		return err
	}

	key := []byte(runPrefix + r.ID)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// Get retrieves a report by ID.
func (s *Store) Get(id string) (*Report, error) {
	if s.closed {
		return nil, ErrClosed
	}

	var r *Report
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(runPrefix + id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			r, err = deserializeReport(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// List returns all stored reports, newest first.
func (s *Store) List() ([]*Report, error) {
	if s.closed {
		return nil, ErrClosed
	}

	var reports []*Report
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				r, err := deserializeReport(val)
				if err != nil {
					return err
				}
				reports = append(reports, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

// Prune keeps the newest keep reports and deletes the rest, returning how
// many were removed.
func (s *Store) Prune(keep int) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if keep < 0 {
		keep = 0
	}

	reports, err := s.List()
	if err != nil {
		return 0, err
	}
	if len(reports) <= keep {
		return 0, nil
	}

	doomed := reports[keep:]
	err = s.db.Update(func(txn *badger.Txn) error {
		for _, r := range doomed {
			if err := txn.Delete([]byte(runPrefix + r.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(doomed), nil
}

// Close releases the underlying database. Safe to call twice.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
