package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type chatLoadedMsg struct {
	items  []models.Message
	unsent int
	err    error
}

type revealedMsg struct {
	id   string
	body string
	err  error
}

// chatModel lists group messages. Sealed bodies stay hidden until revealed.
type chatModel struct {
	ctx context.Context
	svc service.MessageService

	items    []models.Message
	idx      int
	unsent   int
	revealed map[string]string
	form     *form

	status string
	errMsg string
}

func newChatModel(ctx context.Context, svc service.MessageService) *chatModel {
	return &chatModel{ctx: ctx, svc: svc, revealed: make(map[string]string)}
}

func (m *chatModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.items, m.unsent = msg.items, msg.unsent
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case revealedMsg:
		if msg.err != nil {
			m.errMsg = "cannot open message: " + msg.err.Error()
			return m, nil
		}
		m.revealed[msg.id] = msg.body
		return m, nil
	case actionDoneMsg:
		if msg.page != pageMessages {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status, m.errMsg = msg.status, ""
		return m, m.cmdLoad()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, back()
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(keyMsg, keys.compose):
		m.form = newForm("NEW MESSAGE", "Group", "Message", "Encrypt").set(2, "yes")
		if current, ok := m.current(); ok {
			m.form.set(0, current.Group)
		}
	case key.Matches(keyMsg, keys.enter):
		if current, ok := m.current(); ok && current.Encrypted {
			return m, m.cmdReveal(current)
		}
	}
	return m, nil
}

func (m *chatModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.form.update(msg)
	switch {
	case cancelled:
		m.form = nil
		return m, nil
	case !submitted:
		return m, cmd
	}

	group, body := m.form.value(0), m.form.value(1)
	if group == "" {
		m.form.err = service.ErrNoMessageGroup.Error()
		return m, nil
	}
	if body == "" {
		m.form.err = "message is empty"
		return m, nil
	}
	encrypt := !strings.HasPrefix(strings.ToLower(m.form.value(2)), "n")
	m.form = nil
	return m, m.cmdCompose(group, body, encrypt)
}

func (m *chatModel) current() (models.Message, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Message{}, false
	}
	return m.items[m.idx], true
}

func (m *chatModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		items, err := svc.List(ctx, "")
		if err != nil {
			return chatLoadedMsg{err: err}
		}
		unsent, err := svc.UnsentCount(ctx)
		return chatLoadedMsg{items: items, unsent: unsent, err: err}
	}
}

func (m *chatModel) cmdCompose(group, body string, encrypt bool) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		_, err := svc.Compose(ctx, group, body, encrypt)
		return actionDoneMsg{page: pageMessages, status: "Message queued for " + group, err: err}
	}
}

func (m *chatModel) cmdReveal(msg models.Message) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		body, err := svc.Reveal(ctx, msg)
		return revealedMsg{id: msg.ID, body: body, err: err}
	}
}

func (m *chatModel) View() string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Waiting for the hub: %d\n\n", m.unsent))
	if len(m.items) == 0 {
		b.WriteString("No messages\n")
	}
	for i, msg := range m.items {
		body := msg.Body
		if msg.Encrypted {
			body = "🔒 (enter to open)"
			if plain, ok := m.revealed[msg.ID]; ok {
				body = plain
			}
		}
		sent := " "
		if msg.Synced {
			sent = "✓"
		}
		b.WriteString(fmt.Sprintf("%s%s [%s] %s: %s\n",
			cursor(i == m.idx), sent, fitText(msg.Group, 12), fitText(msg.Author, 12), fitText(body, 60)))
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("GROUP MESSAGES", b.String(), "c: compose │ enter: open sealed │ esc: back")
}
