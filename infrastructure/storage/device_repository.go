package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"door-hub/auth"
	"door-hub/domain"
	hub "door-hub/errors"
)

const deviceKeyPrefix = "device:"

type IDeviceRepository interface {
	Create(d domain.Device) error
	Authenticate(deviceID, apiKey string) (domain.Device, error)
	Touch(deviceID string, at time.Time) error
}

// DeviceRepository persists edge-device records and checks their API
// keys at handshake time.
type DeviceRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDeviceRepository(db *badger.DB, log *slog.Logger) *DeviceRepository {
	return &DeviceRepository{db: db, log: log}
}

func (r *DeviceRepository) Create(d domain.Device) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(deviceKeyPrefix+d.ID.String()), data)
	})
}

// Authenticate loads the device and compares the presented API key
// against the stored Argon2id hash. Inactive devices are rejected the
// same way as unknown ones.
func (r *DeviceRepository) Authenticate(deviceID, apiKey string) (domain.Device, error) {
	device, err := r.get(deviceID)
	if err != nil {
		return domain.Device{}, err
	}
	if !device.IsActive {
		return domain.Device{}, fmt.Errorf("%w: %s", hub.ErrDeviceNotFound, deviceID)
	}

	match, err := auth.CompareAPIKey(apiKey, device.APIKeyHash)
	if err != nil || !match {
		return domain.Device{}, hub.ErrInvalidAPIKey
	}
	return device, nil
}

// Touch updates the device's last_online marker, e.g. after a
// successful handshake.
func (r *DeviceRepository) Touch(deviceID string, at time.Time) error {
	device, err := r.get(deviceID)
	if err != nil {
		return err
	}
	device.LastOnline = &at

	data, err := json.Marshal(device)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(deviceKeyPrefix+deviceID), data)
	})
}

func (r *DeviceRepository) get(deviceID string) (domain.Device, error) {
	var device domain.Device
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(deviceKeyPrefix + deviceID))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &device)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Device{}, fmt.Errorf("%w: %s", hub.ErrDeviceNotFound, deviceID)
	}
	if err != nil {
		return domain.Device{}, fmt.Errorf("device lookup failed: %w", err)
	}
	return device, nil
}
