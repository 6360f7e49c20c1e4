package cli

import (
	"fmt"
	"strings"
)

// MatchChoice resolves input to one of choices, case-insensitively.
// An exact match wins; otherwise input must be a prefix of exactly one
// choice, so "y" selects "yaml". kind names the thing being chosen in errors.
func MatchChoice(input, kind string, choices []string) (string, error) {
	in := strings.ToLower(strings.TrimSpace(input))

	for _, c := range choices {
		if strings.ToLower(c) == in {
			return c, nil
		}
	}

	var matches []string
	if in != "" {
		for _, c := range choices {
			if strings.HasPrefix(strings.ToLower(c), in) {
				matches = append(matches, c)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", &ValidationError{Field: kind, Message: fmt.Sprintf("%q (expected %s)", input, strings.Join(choices, ", "))}
	case 1:
		return matches[0], nil
	default:
		return "", &ValidationError{Field: kind, Message: fmt.Sprintf("%q is ambiguous: %s", input, strings.Join(matches, ", "))}
	}
}
