package store

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	apperrors "github.com/couvx/chatbot/internal/errors"
	"github.com/couvx/chatbot/internal/logger"
	"github.com/couvx/chatbot/internal/persistence"
	"github.com/couvx/chatbot/model"
)

// Loader reads one collection from its source.
// A missing source should be reported with os.ErrNotExist.
type Loader func(name model.CollectionName) (model.Collection, error)

// FileLoader returns a Loader reading JSON record arrays from the given paths.
func FileLoader(paths map[model.CollectionName]string) Loader {
	return func(name model.CollectionName) (model.Collection, error) {
		path, ok := paths[name]
		if !ok || path == "" {
			return nil, os.ErrNotExist
		}
		return persistence.LoadRecords(path)
	}
}

// snapshot is an immutable view of every collection.
type snapshot struct {
	collections map[model.CollectionName]model.Collection
}

// RecordStore holds the "kode" and "jenis" collections.
//
// Readers get the current snapshot without locking. Refresh drops the snapshot and
// the next reader reloads every collection; Replace swaps one collection wholesale.
// Collections are never mutated in place.
type RecordStore struct {
	load    Loader
	logger  *zap.Logger
	current atomic.Pointer[snapshot]
	mu      sync.Mutex // serializes loads and replacements
	onLoad  func(name model.CollectionName, size int)
}

// NewRecordStore creates a store backed by load. Nothing is read until first access.
func NewRecordStore(load Loader, l *zap.Logger) *RecordStore {
	return &RecordStore{
		load:   load,
		logger: logger.OrNop(l),
	}
}

// NewFileStore creates a store reading the collections from JSON files.
func NewFileStore(codePath, documentTypePath string, l *zap.Logger) *RecordStore {
	return NewRecordStore(FileLoader(map[model.CollectionName]string{
		model.CollectionCodes:         codePath,
		model.CollectionDocumentTypes: documentTypePath,
	}), l)
}

// OnLoad registers a callback invoked with the size of every collection that enters
// a new snapshot. It must be set before the store is shared.
func (s *RecordStore) OnLoad(fn func(name model.CollectionName, size int)) {
	s.onLoad = fn
}

// Collection returns the named collection from the current snapshot.
func (s *RecordStore) Collection(name model.CollectionName) (model.Collection, error) {
	if !name.Valid() {
		return nil, apperrors.NewCollectionNotFoundError(string(name))
	}
	return s.snapshot().collections[name], nil
}

// Collections returns every collection of the current snapshot.
// The returned map is a copy; the collections themselves are shared and read-only.
func (s *RecordStore) Collections() map[model.CollectionName]model.Collection {
	snap := s.snapshot()
	out := make(map[model.CollectionName]model.Collection, len(snap.collections))
	for name, collection := range snap.collections {
		out[name] = collection
	}
	return out
}

// Counts returns the number of records per collection.
func (s *RecordStore) Counts() map[model.CollectionName]int {
	snap := s.snapshot()
	counts := make(map[model.CollectionName]int, len(model.CollectionNames))
	for _, name := range model.CollectionNames {
		counts[name] = len(snap.collections[name])
	}
	return counts
}

// Refresh invalidates the snapshot. The next access reloads from the sources.
func (s *RecordStore) Refresh() {
	s.mu.Lock()
	s.current.Store(nil)
	s.mu.Unlock()
	s.logger.Info("record store invalidated")
}

// Replace swaps the named collection for a copy of records.
// The other collection is left untouched. The replacement lives in memory only;
// a later Refresh reloads every collection from its source.
func (s *RecordStore) Replace(name model.CollectionName, records model.Collection) error {
	if !name.Valid() {
		return apperrors.NewCollectionNotFoundError(string(name))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.current.Load()
	if base == nil {
		base = s.loadLocked()
	}

	next := &snapshot{collections: make(map[model.CollectionName]model.Collection, len(base.collections))}
	for n, collection := range base.collections {
		next.collections[n] = collection
	}
	replacement := make(model.Collection, len(records))
	copy(replacement, records)
	next.collections[name] = replacement

	s.current.Store(next)
	s.notify(name, len(replacement))
	s.logger.Info("collection replaced", zap.String("collection", string(name)), zap.Int("records", len(replacement)))
	return nil
}

// snapshot returns the current snapshot, loading it if needed.
func (s *RecordStore) snapshot() *snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another reader may have loaded while we waited
	if snap := s.current.Load(); snap != nil {
		return snap
	}

	snap := s.loadLocked()
	s.current.Store(snap)
	return snap
}

// loadLocked reads every collection. A collection that cannot be read becomes empty.
// Callers must hold s.mu.
func (s *RecordStore) loadLocked() *snapshot {
	snap := &snapshot{collections: make(map[model.CollectionName]model.Collection, len(model.CollectionNames))}

	for _, name := range model.CollectionNames {
		records, err := s.load(name)
		switch {
		case errors.Is(err, os.ErrNotExist):
			s.logger.Info("collection source missing, using empty collection", zap.String("collection", string(name)))
			records = model.Collection{}
		case err != nil:
			s.logger.Warn("failed to load collection, using empty collection",
				zap.String("collection", string(name)),
				zap.Error(apperrors.NewDataUnavailableError(string(name), err)))
			records = model.Collection{}
		default:
			s.logger.Info("collection loaded", zap.String("collection", string(name)), zap.Int("records", len(records)))
		}
		if records == nil {
			records = model.Collection{}
		}

		snap.collections[name] = records
		s.notify(name, len(records))
	}

	return snap
}

func (s *RecordStore) notify(name model.CollectionName, size int) {
	if s.onLoad != nil {
		s.onLoad(name, size)
	}
}
