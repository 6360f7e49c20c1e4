package ops

import (
	"strings"

	"github.com/jacksmith/td/internal/model"
)

// Add appends a task with the trimmed text.
// Text that is empty after trimming is ignored: the returned bool is false
// and nothing is saved.
func (s *Store) Add(raw string) (model.Task, bool, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return model.Task{}, false, nil
	}

	task := model.Task{ID: s.ids.Next(), Text: text}
	next := append(s.tasks.Clone(), task)
	if err := s.commit("add", next); err != nil {
		return model.Task{}, false, err
	}
	return task, true, nil
}

// Toggle flips the done flag of the task with the given ID.
// An unknown ID is ignored and reports false.
func (s *Store) Toggle(id int64) (bool, error) {
	i := s.tasks.Index(id)
	if i < 0 {
		return false, nil
	}

	next := s.tasks.Clone()
	next[i].Done = !next[i].Done
	if err := s.commit("toggle", next); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the task with the given ID.
//
// Callers confirm the deletion with the user before calling Remove; the
// Store itself never asks. If the task was being edited the edit session
// ends with it. An unknown ID is ignored and reports false.
func (s *Store) Remove(id int64) (bool, error) {
	i := s.tasks.Index(id)
	if i < 0 {
		return false, nil
	}

	next := make(model.List, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	if err := s.commit("remove", next); err != nil {
		return false, err
	}

	if e, ok := model.ActiveEdit(s.edit); ok && e.TargetID == id {
		s.edit = model.NoActiveEdit{}
	}
	return true, nil
}

// ClearAll removes every task and ends any edit session.
func (s *Store) ClearAll() error {
	if err := s.commit("clear", model.List{}); err != nil {
		return err
	}
	s.edit = model.NoActiveEdit{}
	return nil
}
