package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo switches the active page. When Payload is set it is delivered
// to the new page instead of running the page's Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// actionDoneMsg reports the outcome of a write started by page.
type actionDoneMsg struct {
	page   string
	status string
	err    error
}

// goBack returns to the page that opened the current one, or to the menu.
type goBack struct{}

func back() tea.Cmd {
	return func() tea.Msg { return goBack{} }
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
