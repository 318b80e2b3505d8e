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

type familyLoadedMsg struct {
	items []models.FamilyMember
	err   error
}

type familyModel struct {
	ctx context.Context
	svc service.FamilyService

	items []models.FamilyMember
	idx   int
	form  *form

	status string
	errMsg string
}

func newFamilyModel(ctx context.Context, svc service.FamilyService) *familyModel {
	return &familyModel{ctx: ctx, svc: svc}
}

func (m *familyModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *familyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case familyLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.items = msg.items
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case actionDoneMsg:
		if msg.page != pageFamily {
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
		submitted, cancelled, cmd := m.form.update(msg)
		switch {
		case cancelled:
			m.form = nil
			return m, nil
		case !submitted:
			return m, cmd
		}
		member := models.FamilyMember{Name: m.form.value(0), Location: m.form.value(1)}
		if member.Name == "" {
			m.form.err = "name is required"
			return m, nil
		}
		m.form = nil
		return m, m.cmdAdd(member)
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
	case key.Matches(keyMsg, keys.add):
		m.form = newForm("FAMILY MEMBER", "Name", "Location")
	case key.Matches(keyMsg, keys.toggle), key.Matches(keyMsg, keys.enter):
		if member, ok := m.current(); ok {
			return m, m.cmdToggle(member.ID)
		}
	}
	return m, nil
}

func (m *familyModel) current() (models.FamilyMember, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.FamilyMember{}, false
	}
	return m.items[m.idx], true
}

func (m *familyModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return familyLoadedMsg{items: items, err: err}
	}
}

func (m *familyModel) cmdAdd(member models.FamilyMember) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		saved, err := svc.Add(ctx, member)
		return actionDoneMsg{page: pageFamily, status: saved.Name + " added", err: err}
	}
}

func (m *familyModel) cmdToggle(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		member, err := svc.ToggleSafe(ctx, id)
		state := "not checked in"
		if member.Safe {
			state = "safe"
		}
		return actionDoneMsg{page: pageFamily, status: member.Name + " marked " + state, err: err}
	}
}

func (m *familyModel) View() string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	if len(m.items) == 0 {
		b.WriteString("Nobody on the list\n")
	}
	safe := 0
	for i, member := range m.items {
		mark := "[ ]"
		if member.Safe {
			mark = "[✓]"
			safe++
		}
		b.WriteString(fmt.Sprintf("%s%s %-24s %-20s %s\n",
			cursor(i == m.idx), mark, fitText(member.Name, 24), fitText(valueOrDash(member.Location), 20), member.LastSeen))
	}
	if len(m.items) > 0 {
		b.WriteString(fmt.Sprintf("\n%d of %d safe\n", safe, len(m.items)))
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("FAMILY CHECK-IN", b.String(), "a: add │ space: toggle safe │ esc: back")
}
