package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-pathier/internal/tui"
)

// ConfirmModel asks a yes/no question before a destructive operation.
// The cursor starts on "No" so an accidental enter keeps the data.
type ConfirmModel struct {
	question  string
	detail    string
	cursor    int
	confirmed bool
	done      bool
}

const (
	cursorYes = iota
	cursorNo
)

// NewConfirm creates a confirmation prompt. detail is rendered below the
// question and may be empty.
func NewConfirm(question, detail string) ConfirmModel {
	return ConfirmModel{
		question: question,
		detail:   detail,
		cursor:   cursorNo,
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "h", "tab":
		m.cursor = cursorYes
	case "right", "l", "shift+tab":
		m.cursor = cursorNo
	case "enter", " ":
		return m.finish(m.cursor == cursorYes)
	case "y", "Y":
		return m.finish(true)
	case "n", "N", "q", "esc", "ctrl+c":
		return m.finish(false)
	}
	return m, nil
}

func (m ConfirmModel) finish(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirmed = confirmed
	m.done = true
	return m, tea.Quit
}

func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := "  Yes", "  No"
	if m.cursor == cursorYes {
		yes = tui.SelectedStyle.Render("> Yes")
	} else {
		no = tui.SelectedStyle.Render("> No")
	}

	question := tui.WarningStyle.Render(m.question)
	if m.detail != "" {
		question += "\n" + tui.SubtleStyle.Render(m.detail)
	}

	return fmt.Sprintf("%s\n\n%s  %s\n%s",
		question,
		yes, no,
		tui.HelpStyle.Render("←→ choose • enter confirm • y/n answer"))
}

// Confirmed reports whether the user answered yes.
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Done reports whether the user answered at all.
func (m ConfirmModel) Done() bool {
	return m.done
}
