// Package ops holds the todo list and the operations that change it.
package ops

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jacksmith/td/internal/model"
)

// Persistence defines the slot the Store mirrors its list to.
// The concrete implementation is storage.Slot, but any backend (in-memory,
// failing fakes in tests) can stand in for it.
type Persistence interface {
	// Load returns the saved list. found is false if nothing was ever saved.
	Load() (l model.List, found bool, err error)
	// Save replaces the saved list with l.
	Save(l model.List) error
}

// Store owns the todo list and the current edit session.
//
// Every operation that changes the list saves the new list before the
// change becomes visible; if the save fails the Store is left as it was.
// A Store is not safe for concurrent use.
type Store struct {
	p      Persistence
	logger *log.Logger
	now    func() time.Time
	ids    *model.IDSource

	tasks model.List
	edit  model.EditSession
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger load failures and mutations are reported to.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the clock task IDs are derived from.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore loads the list from p and returns a Store for it.
// A missing list starts empty. A list that cannot be loaded is logged and
// discarded, so a corrupt slot never prevents startup.
func NewStore(p Persistence, opts ...Option) *Store {
	s := &Store{
		p:      p,
		logger: log.New(io.Discard),
		now:    time.Now,
		edit:   model.NoActiveEdit{},
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, found, err := p.Load()
	switch {
	case err != nil:
		s.logger.Warn("discarding saved todo list", "err", err)
		tasks = model.List{}
	case !found || tasks == nil:
		tasks = model.List{}
	}

	s.tasks = tasks
	s.ids = model.NewIDSource(s.now, tasks.MaxID())
	s.logger.Debug("loaded todo list", "tasks", len(tasks), "found", found)
	return s
}

// Tasks returns a snapshot of the list.
func (s *Store) Tasks() model.List {
	return s.tasks.Clone()
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Find returns the task with the given ID.
func (s *Store) Find(id int64) (model.Task, bool) {
	i := s.tasks.Index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// Stats returns the number of done and pending tasks.
func (s *Store) Stats() (done, pending int) {
	return s.tasks.Stats()
}

// Edit returns the current edit session.
func (s *Store) Edit() model.EditSession {
	return s.edit
}

// commit saves next and, only if that succeeds, makes it the current list.
func (s *Store) commit(op string, next model.List) error {
	if err := s.p.Save(next); err != nil {
		s.logger.Error("failed to save todo list", "op", op, "err", err)
		return fmt.Errorf("failed to save todo list: %w", err)
	}
	s.tasks = next
	s.logger.Debug("saved todo list", "op", op, "tasks", len(next))
	return nil
}
