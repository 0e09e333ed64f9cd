// Package gallery holds the in-memory photo collection shown on the Momentos page.
package gallery

import (
	"sync"

	"momentos/internal/models"
)

// Loader produces the bundled photos in display order.
type Loader func() ([]models.Photo, error)

// Observer receives a copy of the collection after every change.
type Observer func(photos []models.Photo)

// Store is the ordered photo collection. Changes are delivered to observers in
// the order they were applied; observers must not modify the store.
type Store struct {
	mu sync.RWMutex
	// notifyMu spans a change and its delivery so observers never see an older collection last
	notifyMu  sync.Mutex
	photos    []models.Photo
	load      Loader
	observers map[int]Observer
	nextObs   int
}

// New builds the store and runs the one-shot initialization from load.
func New(load Loader) (*Store, error) {
	s := &Store{
		load:      load,
		observers: make(map[int]Observer),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-runs the loader and replaces the collection, dropping appended photos.
func (s *Store) Reload() error {
	if s.load == nil {
		s.Initialize(nil)
		return nil
	}
	photos, err := s.load()
	if err != nil {
		return err
	}
	s.Initialize(photos)
	return nil
}

// Initialize replaces the whole collection.
func (s *Store) Initialize(photos []models.Photo) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.photos = append([]models.Photo(nil), photos...)
	s.mu.Unlock()

	s.notify()
}

// Append adds a photo at the end. Id uniqueness is up to the caller.
func (s *Store) Append(p models.Photo) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.photos = append(s.photos, p)
	s.mu.Unlock()

	s.notify()
}

// Remove drops the first photo with the given id.
// It reports false, and changes nothing, when no photo matches.
func (s *Store) Remove(id int64) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	idx := -1
	for i, p := range s.photos {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.photos = append(s.photos[:idx], s.photos[idx+1:]...)
	s.mu.Unlock()

	s.notify()
	return true
}

// List returns a copy of the collection in display order.
func (s *Store) List() []models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// Len reports how many photos the collection holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.photos)
}

// Subscribe registers fn for change notifications and returns a func that removes it.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	fns := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	if len(fns) == 0 {
		return
	}
	snapshot := s.List()
	for _, fn := range fns {
		fn(snapshot)
	}
}
