// Package store persists the transaction and rule lists in a single-file
// key-value store. Both lists live as JSON arrays under fixed keys; there is
// no versioning or migration logic.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

var (
	bucketName      = []byte("finanzas")
	keyTransactions = []byte("transactions")
	keyRules        = []byte("rules")
)

// Store is a bbolt-backed flat KV store.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the store file.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTransactions replaces the stored transaction list.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	return s.put(keyTransactions, txns)
}

// LoadTransactions returns the stored transaction list, empty when nothing
// has been saved yet.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := s.get(keyTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// SaveRules replaces the stored rule list.
func (s *Store) SaveRules(rules []model.CategoryRule) error {
	return s.put(keyRules, rules)
}

// LoadRules returns the stored rule list.
func (s *Store) LoadRules() ([]model.CategoryRule, error) {
	var rules []model.CategoryRule
	if err := s.get(keyRules, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *Store) put(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, data)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(key []byte, v any) error {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(bucketName).Get(key); raw != nil {
			data = append(data, raw...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	return nil
}
