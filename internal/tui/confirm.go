package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question before a destructive action.
type confirmModel struct {
	question string
	target   string
}

// answer reports whether msg answered the question and how.
func (m confirmModel) answer(msg tea.KeyMsg) (answered, yes bool) {
	switch {
	case key.Matches(msg, keys.yes):
		return true, true
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		return true, false
	}
	return false, false
}

func (m confirmModel) View() string {
	content := m.question + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
