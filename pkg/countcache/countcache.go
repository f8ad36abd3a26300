// Package countcache persists the last-known transaction count per address
// set. The count is only used to estimate the credit cost of the next export;
// transaction bodies themselves are always fetched fresh.
package countcache

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

var ErrNotFound = errors.New("countcache: no recorded count")

type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Key derives a stable cache key from an address set. Order and case of the
// input addresses must not affect the key.
func Key(addresses []string) string {
	normalized := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(addr)))
	}
	sort.Strings(normalized)
	return "txcount/" + strings.Join(normalized, ",")
}

func (s *Store) Get(key string) (int64, error) {
	var count int64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		count, err = strconv.ParseInt(string(val), 10, 64)
		return err
	})
	return count, err
}

func (s *Store) Set(key string, count int64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(strconv.FormatInt(count, 10)))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
