// Package moments keeps the list of moments typed into the "new moment" form.
// The list lives only in memory.
package moments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"momentos/internal/models"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidMoment wraps every rejection of the "new moment" form.
var ErrInvalidMoment = errors.New("invalid moment")

const (
	dateLayout    = "2006-01-02"
	displayLayout = "02/01/2006"
)

// Observer receives a copy of the list after every change.
type Observer func(moments []models.Moment)

// Store is the in-memory moments list. Changes are delivered to observers in
// the order they were applied; observers must not modify the store.
type Store struct {
	mu sync.RWMutex
	// notifyMu spans a change and its delivery so observers never see an older list last
	notifyMu  sync.Mutex
	moments   []models.Moment
	lastID    int64
	validate  *validator.Validate
	now       func() time.Time
	observers map[int]Observer
	nextObs   int
}

// NewStore returns an empty list.
func NewStore() *Store {
	return &Store{
		validate:  validator.New(),
		now:       time.Now,
		observers: make(map[int]Observer),
	}
}

// Add appends a new moment; the only requirement is a non-empty title.
// Other fields are stored as typed. Ids come from the millisecond clock and are
// bumped to stay strictly increasing.
func (s *Store) Add(ctx context.Context, in models.MomentInput) (models.Moment, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return models.Moment{}, fmt.Errorf("%w: %s", ErrInvalidMoment, describe(err))
	}

	m := models.Moment{
		Title:       in.Title,
		Date:        in.Date,
		Location:    in.Location,
		Description: in.Description,
		DisplayDate: DisplayDate(in.Date),
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	m.ID = id
	s.moments = append(s.moments, m)
	s.mu.Unlock()

	s.notify()
	return m, nil
}

// Remove deletes the moment with the given id; an unknown id is ignored.
func (s *Store) Remove(id int64) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	idx := -1
	for i, m := range s.moments {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.moments = append(s.moments[:idx], s.moments[idx+1:]...)
	s.mu.Unlock()

	s.notify()
	return true
}

// List returns the moments in insertion order.
func (s *Store) List() []models.Moment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Moment, len(s.moments))
	copy(out, s.moments)
	return out
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

// DisplayDate renders a YYYY-MM-DD date as DD/MM/YYYY.
// Anything else, including dates typed in another format, gives "".
func DisplayDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format(displayLayout)
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}
