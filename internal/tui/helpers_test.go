package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlX = tea.KeyMsg{Type: tea.KeyCtrlX}
)

// exec runs cmd and returns the message it produces.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	return cmd()
}

// settle runs cmd and feeds its message back into model.
func settle(t *testing.T, model tea.Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	t.Helper()
	return model.Update(exec(t, cmd))
}

func navigation(t *testing.T, cmd tea.Cmd) NavigateTo {
	t.Helper()
	nav, ok := exec(t, cmd).(NavigateTo)
	require.True(t, ok, "expected a NavigateTo message")
	return nav
}

type fakeRenderer struct {
	err error
}

func (f fakeRenderer) PNG(text string) ([]byte, error) {
	return []byte(text), f.err
}

func (f fakeRenderer) Terminal(text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "QR<" + text + ">\n", nil
}

var errBoom = errors.New("boom")
