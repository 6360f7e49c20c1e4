// Package tui is an interactive terminal front end for the todo list.
//
// The model never holds list state of its own: it reads tasks and the edit
// session from the ops.Store on every render and turns key presses into
// Store operations.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/td/internal/model"
	"github.com/jacksmith/td/internal/ops"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmDelete
)

const emptyTextStatus = "Text cannot be empty"

// Model is the bubbletea model for the list view.
type Model struct {
	store  *ops.Store
	mode   mode
	cursor int

	input textinput.Model
	help  help.Model

	pendingDelete int64 // task awaiting confirmation in modeConfirmDelete
	status        string
	err           error
}

// New returns a Model over store.
func New(store *ops.Store) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0 // unlimited

	return Model{
		store: store,
		input: ti,
		help:  help.New(),
	}
}

// Run starts an interactive program over store and blocks until the user quits.
func Run(store *ops.Store, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(store), opts...).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.status, m.err = "", nil

		if key.Matches(msg, forceQuit) {
			m.store.CancelEdit()
			return m, tea.Quit
		}
		if _, editing := model.ActiveEdit(m.store.Edit()); editing {
			return m.updateEditing(msg)
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdding(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
		return m.updateBrowsing(msg)
	}

	// Cursor blink and other input housekeeping.
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.store.Tasks()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Toggle):
		if len(tasks) > 0 {
			_, m.err = m.store.Toggle(tasks[m.cursor].ID)
		}

	case key.Matches(msg, keys.Add):
		m.mode = modeAdd
		m.input.Reset()
		m.input.Placeholder = "What needs doing?"
		return m, m.input.Focus()

	case key.Matches(msg, keys.Edit):
		if len(tasks) == 0 || !m.store.StartEdit(tasks[m.cursor].ID) {
			return m, nil
		}
		e, _ := model.ActiveEdit(m.store.Edit())
		m.input.Placeholder = ""
		m.input.SetValue(e.Draft)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, keys.Delete):
		if len(tasks) > 0 {
			m.pendingDelete = tasks[m.cursor].ID
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, keys.Clear):
		if m.err = m.store.ClearAll(); m.err == nil {
			m.status = "Cleared all todos"
		}

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clampCursor()
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, submitKey):
		_, ok, err := m.store.Add(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		if !ok {
			// Keep the input open with its value so it can be corrected.
			m.status = emptyTextStatus
			return m, nil
		}
		m.cursor = m.store.Len() - 1
		m.closeInput()
		return m, nil

	case key.Matches(msg, cancelKey):
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, submitKey):
		ok, err := m.store.CommitEdit()
		if err != nil {
			m.err = err
			return m, nil
		}
		if !ok {
			if _, still := model.ActiveEdit(m.store.Edit()); still {
				m.status = emptyTextStatus
				return m, nil
			}
		}
		m.closeInput()
		return m, nil

	case key.Matches(msg, cancelKey):
		m.store.CancelEdit()
		m.closeInput()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.store.UpdateDraft(v)
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, confirmKey) {
		_, m.err = m.store.Remove(m.pendingDelete)
	}
	m.pendingDelete = 0
	m.mode = modeBrowse
	m.clampCursor()
	return m, nil
}

func (m *Model) closeInput() {
	m.input.Reset()
	m.input.Blur()
	m.mode = modeBrowse
}

func (m *Model) clampCursor() {
	n := m.store.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	done, pending := m.store.Stats()
	fmt.Fprintf(&b, "%s   %s  %s\n\n",
		titleStyle.Render("Todo List"),
		successStyle.Render(fmt.Sprintf("%d done", done)),
		pendingStyle.Render(fmt.Sprintf("%d pending", pending)),
	)

	tasks := m.store.Tasks()
	edit, editing := model.ActiveEdit(m.store.Edit())

	if len(tasks) == 0 {
		b.WriteString(mutedStyle.Render("No todos") + "\n")
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = selectedStyle.Render(cursorMark)
		}

		box := mutedStyle.Render(boxUnchecked)
		if t.Done {
			box = successStyle.Render(boxChecked)
		}

		var text string
		switch {
		case editing && edit.TargetID == t.ID:
			text = m.input.View()
		case t.Done:
			text = doneStyle.Render(t.Text)
		case i == m.cursor:
			text = selectedStyle.Render(t.Text)
		default:
			text = t.Text
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, text)
	}
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(m.input.View() + "\n\n")
	case modeConfirmDelete:
		if t, ok := m.store.Find(m.pendingDelete); ok {
			b.WriteString(promptStyle.Render(fmt.Sprintf("Delete %q? (y/N)", t.Text)) + "\n\n")
		}
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n\n")
	} else if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status) + "\n\n")
	}

	if editing || m.mode == modeAdd {
		b.WriteString(m.help.View(inputKeyMap{}))
	} else {
		b.WriteString(m.help.View(keys))
	}

	return appStyle.Render(b.String())
}
