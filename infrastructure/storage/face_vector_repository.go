package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"door-hub/domain"
)

// Key layout puts the name first so delete-by-name is a single prefix
// scan per keyspace.
const (
	faceVectorKeyFmt = "facevector:%s:%s" // facevector:<name>:<id>
	anonVectorKeyFmt = "anonvector:%s:%s" // anonvector:<name>:<id>
)

type IFaceVectorRepository interface {
	Store(v domain.FaceVector) error
	StoreAnonymous(v domain.AnonymousFaceVector) error
	DeleteByName(name string) domain.DeleteResult
	ListNames() ([]string, error)
}

// FaceVectorRepository persists identified and anonymous face vectors
// in BadgerDB, in two separate keyspaces that delete-by-name searches
// and aggregates across.
type FaceVectorRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewFaceVectorRepository(db *badger.DB, log *slog.Logger) *FaceVectorRepository {
	return &FaceVectorRepository{db: db, log: log}
}

func (r *FaceVectorRepository) Store(v domain.FaceVector) error {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(faceVectorKeyFmt, v.Name, v.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (r *FaceVectorRepository) StoreAnonymous(v domain.AnonymousFaceVector) error {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(anonVectorKeyFmt, v.Name, v.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// DeleteByName removes every vector stored under the name, across both
// the identified and anonymous keyspaces, and aggregates the result.
// Failures are encoded in the result, never returned: the caller
// relays the outcome to a client as a normal message.
func (r *FaceVectorRepository) DeleteByName(name string) domain.DeleteResult {
	identified, err := r.deleteByPrefix(fmt.Sprintf("facevector:%s:", name))
	if err != nil {
		return domain.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Error deleting FaceVectors: %v", err),
		}
	}

	anonymous, err := r.deleteByPrefix(fmt.Sprintf("anonvector:%s:", name))
	if err != nil {
		return domain.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Error deleting AnonymousFaceVectors: %v", err),
		}
	}

	deletedIDs := append(identified, anonymous...)
	if len(deletedIDs) == 0 {
		return domain.DeleteResult{
			Success:      false,
			DeletedCount: 0,
			DeletedIDs:   []string{},
			Message:      fmt.Sprintf("No face vectors found with name '%s'", name),
		}
	}

	return domain.DeleteResult{
		Success:      true,
		DeletedCount: len(deletedIDs),
		DeletedIDs:   deletedIDs,
		Message:      fmt.Sprintf("Deleted %d face vectors with name '%s'", len(deletedIDs), name),
	}
}

// deleteByPrefix collects the record ids under a prefix, then deletes
// the keys in one transaction. The id is the key's last segment, so no
// value decoding is needed on the delete path.
func (r *FaceVectorRepository) deleteByPrefix(prefix string) ([]string, error) {
	var keys [][]byte
	prefixBytes := []byte(prefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // keys are enough here
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := lo.Map(keys, func(key []byte, _ int) string {
		return string(key[len(prefix):])
	})
	return ids, nil
}

// ListNames returns the distinct vector names present in either
// keyspace. Used by the inspection tooling.
func (r *FaceVectorRepository) ListNames() ([]string, error) {
	unique := make(map[string]struct{})

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for _, prefix := range []string{"facevector:", "anonvector:"} {
			prefixBytes := []byte(prefix)
			for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
				key := string(it.Item().Key())
				rest := key[len(prefix):]
				for i := len(rest) - 1; i >= 0; i-- {
					if rest[i] == ':' {
						unique[rest[:i]] = struct{}{}
						break
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := lo.Keys(unique)
	return names, nil
}
