package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/td/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	styleStrike = "\033[9m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ApplyColorMode sets color output from a config value:
// "always", "never", or "auto" (color only when stdout is a terminal).
func ApplyColorMode(mode string) {
	switch mode {
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	default:
		colorEnabled = IsTerminal(os.Stdout)
	}
}

// IsTerminal returns true if f is a terminal.
// Works for both readers (stdin) and writers (stdout).
func IsTerminal(f any) bool {
	if file, ok := f.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func wrap(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return wrap(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return wrap(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return wrap(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return wrap(colorGray, s) }

// Strike returns s struck through if colors are enabled.
func Strike(s string) string { return wrap(styleStrike, s) }

// Checkbox returns the marker shown in front of a task.
func Checkbox(done bool) string {
	if done {
		return Green("[x]")
	}
	return "[ ]"
}

// DefaultMaxTextWidth is the default maximum visible width for task text.
const DefaultMaxTextWidth = 60

// RenderTasks writes one row per task: position, checkbox, text, ID.
// Done tasks are struck through. An empty list prints "No todos".
func RenderTasks(w io.Writer, tasks model.List, positions []int) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, Gray("No todos"))
		return
	}

	table := NewTable()
	table.SetMaxWidth(2, DefaultMaxTextWidth)
	for i, t := range tasks {
		pos := i + 1
		if positions != nil {
			pos = positions[i]
		}
		text := t.Text
		if t.Done {
			text = Gray(Strike(text))
		}
		table.AddRow(strconv.Itoa(pos)+".", Checkbox(t.Done), text, Gray(strconv.FormatInt(t.ID, 10)))
	}
	table.Render(w)
}

// Summary returns a one-line count of done and pending tasks.
func Summary(done, pending int) string {
	return fmt.Sprintf("%s done, %s pending", Green(strconv.Itoa(done)), Yellow(strconv.Itoa(pending)))
}

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is never padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(t.colWidths)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// when there is room for it. ANSI escape codes are kept, and a reset is
// appended if any were cut into.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit, suffix := maxWidth, ""
	if maxWidth >= len(ellipsis) {
		limit, suffix = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasAnsi = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			inEscape = r != 'm'
		case visible < limit:
			b.WriteRune(r)
			visible++
		}
	}
	b.WriteString(suffix)
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			inEscape = r != 'm'
		default:
			width++
		}
	}
	return width
}
