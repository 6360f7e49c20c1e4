package storage

import (
	"fmt"

	"github.com/jacksmith/td/internal/model"
)

// DefaultSlot is the key the todo list is stored under.
const DefaultSlot = "TODO"

// Slot persists a todo list under one key of a KV.
type Slot struct {
	kv  KV
	key string
}

// NewSlot returns a Slot for key in kv. An empty key means DefaultSlot.
func NewSlot(kv KV, key string) *Slot {
	if key == "" {
		key = DefaultSlot
	}
	return &Slot{kv: kv, key: key}
}

// Key returns the slot key.
func (s *Slot) Key() string {
	return s.key
}

// Load reads and decodes the list.
// found is false when the slot has never been written or holds no bytes,
// so an empty file starts an empty list. A slot that exists
// but cannot be decoded returns found=true and a *model.CorruptError.
func (s *Slot) Load() (model.List, bool, error) {
	data, found, err := s.kv.Get(s.key)
	if err != nil || !found {
		return nil, found, err
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	l, err := model.DecodeList(data)
	if err != nil {
		return nil, true, fmt.Errorf("slot %s: %w", s.key, err)
	}
	return l, true, nil
}

// Save overwrites the slot with l.
func (s *Slot) Save(l model.List) error {
	data, err := model.EncodeList(l)
	if err != nil {
		return err
	}
	return s.kv.Put(s.key, data)
}
