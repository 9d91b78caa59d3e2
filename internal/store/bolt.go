package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"ukdtimers/internal/model"
)

// BoltStore keeps the document in a bbolt file with one bucket per
// collection. Keys are big-endian positions so cursor order is insertion
// order.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the bbolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	return &BoltStore{db: db}, nil
}

// Load implements Store.
func (s *BoltStore) Load(_ context.Context) *model.Document {
	var records []record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, b *bbolt.Bucket) error {
			return b.ForEach(func(k, v []byte) error {
				if len(k) != 8 {
					return fmt.Errorf("bucket %s: bad key %x", name, k)
				}
				records = append(records, record{
					Collection: string(name),
					Position:   int(binary.BigEndian.Uint64(k)),
					Body:       append([]byte(nil), v...),
				})
				return nil
			})
		})
	})
	if err != nil {
		log.Printf("store: read bolt: %v", err)
		return model.NewDocument()
	}

	doc, err := assemble(records)
	if err != nil {
		log.Printf("store: decode bolt: %v", err)
		return model.NewDocument()
	}
	Migrate(doc)
	return doc
}

// Save replaces every bucket inside one write transaction.
func (s *BoltStore) Save(_ context.Context, doc *model.Document) error {
	records, err := flatten(doc)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		var existing [][]byte
		if err := tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			existing = append(existing, append([]byte(nil), name...))
			return nil
		}); err != nil {
			return err
		}
		for _, name := range existing {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("drop bucket %s: %w", name, err)
			}
		}

		for _, name := range append([]string{extraCollection}, collections...) {
			if _, err := tx.CreateBucket([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		for _, r := range records {
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(r.Position))
			if err := tx.Bucket([]byte(r.Collection)).Put(key, r.Body); err != nil {
				return fmt.Errorf("put %s/%d: %w", r.Collection, r.Position, err)
			}
		}
		return nil
	})
}

// Close releases the bbolt file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
