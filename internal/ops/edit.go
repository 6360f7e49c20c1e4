package ops

import (
	"strings"

	"github.com/jacksmith/td/internal/model"
)

// StartEdit begins editing the task with the given ID, with its current
// text as the draft. Any previous session is discarded. An unknown ID is
// ignored and reports false.
func (s *Store) StartEdit(id int64) bool {
	t, ok := s.Find(id)
	if !ok {
		return false
	}
	s.edit = model.Editing{TargetID: id, Draft: t.Text}
	return true
}

// UpdateDraft replaces the draft of the active session.
// It reports false if no session is active.
func (s *Store) UpdateDraft(text string) bool {
	e, ok := model.ActiveEdit(s.edit)
	if !ok {
		return false
	}
	e.Draft = text
	s.edit = e
	return true
}

// CommitEdit saves the trimmed draft as the target task's text and ends
// the session. It reports false without saving when:
//   - no session is active;
//   - the target task no longer exists (the session is ended);
//   - the trimmed draft is empty (the session stays active so the caller
//     can correct the draft or cancel).
func (s *Store) CommitEdit() (bool, error) {
	var e model.Editing
	switch cur := s.edit.(type) {
	case model.NoActiveEdit:
		return false, nil
	case model.Editing:
		e = cur
	}

	i := s.tasks.Index(e.TargetID)
	if i < 0 {
		s.edit = model.NoActiveEdit{}
		return false, nil
	}

	text := strings.TrimSpace(e.Draft)
	if text == "" {
		return false, nil
	}

	next := s.tasks.Clone()
	next[i].Text = text
	if err := s.commit("edit", next); err != nil {
		return false, err
	}
	s.edit = model.NoActiveEdit{}
	return true, nil
}

// CancelEdit ends the active session without saving.
func (s *Store) CancelEdit() {
	s.edit = model.NoActiveEdit{}
}
