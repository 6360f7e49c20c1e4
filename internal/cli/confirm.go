package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes prompt followed by " [y/N] " to out and reads one line
// from in. Only "y" and "yes" (any case) confirm; anything else, including
// end of input, declines.
func Confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
