package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// dataKey is the single slot the whole snapshot is stored under.
// The name predates this server: the original browser client kept the
// same blob under this localStorage key, and imports of old exports
// rely on the schema staying put.
const dataKey = "matchboard_data"

// Adapter reads and writes the serialized snapshot blob to a local
// Badger database. It is the only component touching durable storage,
// and nothing else shares the database.
//
// Faults never propagate upward as panics or surprises: Load degrades
// to "absent" and Save reports an error the store absorbs. The caller
// keeps operating in memory either way.
type Adapter struct {
	db     *badger.DB
	logger *slog.Logger
}

// OpenAdapter opens (or creates) the badger database at path.
func OpenAdapter(path string, logger *slog.Logger) (*Adapter, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Sync writes to disk to survive crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("badger database opened", "path", path)
	}

	return &Adapter{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (a *Adapter) Close() error {
	if a.logger != nil {
		a.logger.Info("closing database")
	}
	return a.db.Close()
}

// Load retrieves the stored blob. The second return value is false
// when the slot was never written or the read fails for any reason —
// the fault is logged and swallowed, never surfaced.
func (a *Adapter) Load() ([]byte, bool) {
	var raw []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(dataKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("failed to load snapshot, treating as absent", "error", err)
		}
		return nil, false
	}
	return raw, true
}

// Save serializes the snapshot and writes it under the fixed key.
// A returned error means the durable copy is stale; the in-memory
// snapshot stays authoritative and the next mutation retries with a
// fresh full write.
func (a *Adapter) Save(data domain.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(dataKey), raw)
	})
}

// Erase deletes the stored blob entirely. Used only by the
// confirmation-gated clear-all operation.
func (a *Adapter) Erase() error {
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(dataKey))
	})
}
