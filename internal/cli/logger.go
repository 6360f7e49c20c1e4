package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w at the given level
// (debug, info, warn or error).
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "td",
	}), nil
}
