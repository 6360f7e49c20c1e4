// Package cli provides CLI infrastructure for td.
package cli

import (
	"strconv"
	"strings"

	"github.com/jacksmith/td/internal/model"
)

// ResolveRef finds the task a user-typed reference points at.
//
// A reference is tried, in order, as:
//  1. a full task ID;
//  2. a 1-based position in the list, as shown by `td list`;
//  3. a suffix of exactly one task ID (like a short commit hash).
func ResolveRef(ref string, tasks model.List) (int64, error) {
	n, err := model.ParseID(ref)
	if err != nil {
		return 0, &ValidationError{Field: "task reference", Message: strconv.Quote(ref) + " is not an ID or position"}
	}

	if tasks.Index(n) >= 0 {
		return n, nil
	}
	if n <= int64(len(tasks)) {
		return tasks[n-1].ID, nil
	}

	suffix := strconv.FormatInt(n, 10)
	var matches []string
	var matched int64
	for _, t := range tasks {
		id := strconv.FormatInt(t.ID, 10)
		if strings.HasSuffix(id, suffix) {
			matches = append(matches, id)
			matched = t.ID
		}
	}

	switch len(matches) {
	case 0:
		return 0, &NotFoundError{Type: "task", ID: strings.TrimSpace(ref)}
	case 1:
		return matched, nil
	default:
		return 0, &AmbiguousError{Ref: strings.TrimSpace(ref), Matches: matches}
	}
}

// Position returns the 1-based position of id in tasks, or 0.
func Position(id int64, tasks model.List) int {
	return tasks.Index(id) + 1
}
