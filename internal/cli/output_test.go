package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jacksmith/td/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	// When running tests, stdout is typically not a terminal
	// We test with a regular file which should not be a terminal
	f, err := os.CreateTemp("", "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
	assert.False(t, IsTerminal(strings.NewReader("")), "reader should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)
	assert.Equal(t, "\033[32mtest\033[0m", Green("test"))
	assert.Equal(t, "\033[31mtest\033[0m", Red("test"))
	assert.Equal(t, "\033[33mtest\033[0m", Yellow("test"))
	assert.Equal(t, "\033[90mtest\033[0m", Gray("test"))
	assert.Equal(t, "\033[9mtest\033[0m", Strike("test"))

	SetColorEnabled(false)
	assert.Equal(t, "test", Green("test"))
	assert.Equal(t, "test", Red("test"))
	assert.Equal(t, "test", Yellow("test"))
	assert.Equal(t, "test", Gray("test"))
	assert.Equal(t, "test", Strike("test"))
}

func TestApplyColorMode(t *testing.T) {
	defer SetColorEnabled(false)

	ApplyColorMode("always")
	assert.True(t, ColorEnabled())

	ApplyColorMode("never")
	assert.False(t, ColorEnabled())

	// Tests do not run with a terminal on stdout
	ApplyColorMode("auto")
	assert.Equal(t, IsTerminal(os.Stdout), ColorEnabled())
}

func TestCheckbox(t *testing.T) {
	SetColorEnabled(false)
	assert.Equal(t, "[ ]", Checkbox(false))
	assert.Equal(t, "[x]", Checkbox(true))
}

func TestRenderTasks(t *testing.T) {
	SetColorEnabled(false)

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		RenderTasks(&buf, nil, nil)
		assert.Equal(t, "No todos\n", buf.String())
	})

	t.Run("rows are numbered from one", func(t *testing.T) {
		tasks := model.List{
			{ID: 1760000000000, Text: "Buy milk"},
			{ID: 1760000000001, Text: "Walk dog", Done: true},
		}
		var buf bytes.Buffer
		RenderTasks(&buf, tasks, nil)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, []string{
			"1.  [ ]  Buy milk  1760000000000",
			"2.  [x]  Walk dog  1760000000001",
		}, lines)
	})

	t.Run("explicit positions are kept", func(t *testing.T) {
		tasks := model.List{{ID: 5, Text: "third"}}
		var buf bytes.Buffer
		RenderTasks(&buf, tasks, []int{3})
		assert.True(t, strings.HasPrefix(buf.String(), "3."))
	})

	t.Run("long text is truncated", func(t *testing.T) {
		tasks := model.List{{ID: 1, Text: strings.Repeat("x", 100)}}
		var buf bytes.Buffer
		RenderTasks(&buf, tasks, nil)
		assert.Contains(t, buf.String(), "...")
		assert.NotContains(t, buf.String(), strings.Repeat("x", 100))
	})
}

func TestSummary(t *testing.T) {
	SetColorEnabled(false)
	assert.Equal(t, "2 done, 3 pending", Summary(2, 3))
}

func TestTableEmpty(t *testing.T) {
	table := NewTable()
	var buf bytes.Buffer
	table.Render(&buf)
	assert.Equal(t, "", buf.String())
}

func TestTableMultipleRows(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "bb", "ccc")
	table.AddRow("dddd", "e", "ff")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "a     bb  ccc\n" +
		"dddd  e   ff\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableWithColoredText(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	table := NewTable()
	table.AddRow("1.", Green("[x]"), "Task")
	table.AddRow("10.", "[ ]", "Another task")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	// Text columns line up despite ANSI codes in the checkbox column
	assert.Equal(t, strings.Index(lines[1], "Another"), visibleWidth(lines[0][:strings.Index(lines[0], "Task")]))
}

func TestTableUnevenRows(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "b", "c")
	table.AddRow("d", "e")

	var buf bytes.Buffer
	table.Render(&buf)

	assert.Equal(t, "a  b  c\nd  e\n", buf.String())
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"a\033[32mb\033[0mc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTruncatePlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"very short max", "hello world", 3, "..."},
		{"max 1", "hello", 1, "h"},
		{"max 0", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"long text", strings.Repeat("x", 100), 20, strings.Repeat("x", 17) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateWithANSI(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	got := Truncate(Green("hello world"), 8)
	assert.Equal(t, 8, visibleWidth(got))
	assert.Contains(t, got, "...")
	assert.True(t, strings.HasSuffix(got, colorReset), "should end with ANSI reset")
}
