package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	hub "door-hub/errors"

	"door-hub/domain"
)

const doorKeyPrefix = "door:"

type IDoorRepository interface {
	SetStatus(doorID string, status domain.DoorStatus) error
	Get(doorID string) (domain.Door, error)
	Create(door domain.Door) error
	List() ([]domain.Door, error)
}

// DoorRepository persists door records in BadgerDB under "door:<id>"
// keys with JSON values.
type DoorRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDoorRepository(db *badger.DB, log *slog.Logger) *DoorRepository {
	return &DoorRepository{db: db, log: log}
}

func (r *DoorRepository) Create(door domain.Door) error {
	door.UpdatedAt = time.Now().UTC()
	return r.put(door)
}

// SetStatus upserts the door's current status. A status update relayed
// for a door the store has never seen creates the record on the fly:
// the relay must not fail on CRUD gaps.
func (r *DoorRepository) SetStatus(doorID string, status domain.DoorStatus) error {
	door, err := r.Get(doorID)
	if errors.Is(err, hub.ErrDoorNotFound) {
		door = domain.Door{ID: doorID, Name: doorID}
	} else if err != nil {
		return err
	}

	door.CurrentStatus = status
	door.UpdatedAt = time.Now().UTC()
	return r.put(door)
}

func (r *DoorRepository) Get(doorID string) (domain.Door, error) {
	var door domain.Door
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(doorKeyPrefix + doorID))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &door)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Door{}, fmt.Errorf("%w: %s", hub.ErrDoorNotFound, doorID)
	}
	if err != nil {
		return domain.Door{}, fmt.Errorf("door lookup failed: %w", err)
	}
	return door, nil
}

func (r *DoorRepository) List() ([]domain.Door, error) {
	var doors []domain.Door
	prefix := []byte(doorKeyPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var door domain.Door
				if err := json.Unmarshal(v, &door); err != nil {
					return fmt.Errorf("failed to unmarshal door: %w", err)
				}
				doors = append(doors, door)
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
	return doors, nil
}

func (r *DoorRepository) put(door domain.Door) error {
	data, err := json.Marshal(door)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(doorKeyPrefix+door.ID), data)
	})
}
