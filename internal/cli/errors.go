package cli

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a task or slot was not found.
type NotFoundError struct {
	Type string // "task" or "slot"
	ID   string // the reference that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// AmbiguousError indicates a reference matched more than one task.
type AmbiguousError struct {
	Ref     string   // what the user typed
	Matches []string // the IDs it matched
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous reference %q matches: %s", e.Ref, strings.Join(e.Matches, ", "))
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConfirmationError indicates a destructive operation was not confirmed.
type ConfirmationError struct {
	Action string // what was attempted
	Hint   string // suggestion for how to proceed
}

func (e *ConfirmationError) Error() string {
	msg := fmt.Sprintf("%s not confirmed", e.Action)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
