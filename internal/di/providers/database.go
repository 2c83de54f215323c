package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/matchboardapp/matchboard-server/internal/config"
	"github.com/matchboardapp/matchboard-server/internal/logger"
	"github.com/matchboardapp/matchboard-server/internal/search"
	"github.com/matchboardapp/matchboard-server/internal/store"
)

// AdapterHandle wraps the persistence adapter with shutdown capability.
type AdapterHandle struct {
	*store.Adapter
}

// Shutdown implements do.Shutdownable.
func (h *AdapterHandle) Shutdown() error {
	return h.Close()
}

// ProvideAdapter provides the badger-backed persistence adapter.
func ProvideAdapter(i do.Injector) (*AdapterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	adapter, err := store.OpenAdapter(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &AdapterHandle{Adapter: adapter}, nil
}

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the in-memory candidate search index.
// The store fills it during its own initialization.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	idx, err := search.NewIndex(search.Options{Logger: log.Logger})
	if err != nil {
		return nil, err
	}

	log.Info("Search index ready")

	return &SearchIndexHandle{Index: idx}, nil
}

// StoreHandle wraps the store. The store itself holds no resources
// beyond the adapter and index, which shut down through their own
// handles.
type StoreHandle struct {
	*store.Store
}

// ProvideStore provides the authoritative data store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)
	adapterHandle := do.MustInvoke[*AdapterHandle](i)
	searchHandle := do.MustInvoke[*SearchIndexHandle](i)

	st := store.New(adapterHandle.Adapter, log.Logger, searchHandle.Index)

	data := st.Snapshot()
	log.Info("Store loaded",
		"candidates", len(data.Candidates),
		"notes", len(data.Notes),
		"interactions", len(data.Interactions),
		"tags", len(data.Tags),
	)

	return &StoreHandle{Store: st}, nil
}
