package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of labelled text inputs shared by the editing screens.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
}

func newForm(title string, labels ...string) *form {
	f := &form{title: title, labels: labels, inputs: make([]textinput.Model, len(labels))}
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.Width = 40
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) set(i int, v string) *form {
	f.inputs[i].SetValue(v)
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update feeds msg to the focused input. submitted and cancelled report
// enter and esc.
func (f *form) update(msg tea.Msg) (submitted, cancelled bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return false, true, nil
		case key.Matches(keyMsg, keys.enter):
			return true, false, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			f.move(1)
			return false, false, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			f.move(-1)
			return false, false, nil
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, false, cmd
}

func (f *form) View() string {
	width := 0
	for _, label := range f.labels {
		width = max(width, len(label))
	}

	var b strings.Builder
	for i, label := range f.labels {
		b.WriteString(fmt.Sprintf("%-*s : [%s]\n", width, label, f.inputs[i].View()))
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
		b.WriteString("\n")
	}
	return renderPage(f.title, b.String(), "tab: next field │ shift+tab: previous │ enter: save │ esc: cancel")
}
