package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidID is returned when an ID cannot be parsed.
var ErrInvalidID = errors.New("invalid ID format")

// IDSource hands out task IDs derived from the creation time in
// milliseconds. IDs are strictly increasing, so two tasks created in the
// same millisecond, or after the clock stepped backwards, still get
// distinct IDs. An ID is never handed out twice by the same source.
type IDSource struct {
	now  func() time.Time
	last int64
}

// NewIDSource returns an IDSource that never returns an ID <= floor.
// Pass the largest ID already in use so loaded tasks are never reused.
func NewIDSource(now func() time.Time, floor int64) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now, last: floor}
}

// Next returns a fresh ID.
func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// ParseID parses a task ID as printed by td.
// Surrounding whitespace and a leading "#" are ignored.
func ParseID(s string) (int64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid task ID", ErrInvalidID, s)
	}
	return id, nil
}
