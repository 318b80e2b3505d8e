package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type roomLoadedMsg struct {
	room   models.Room
	status string
	err    error
}

// roomModel shows the room this device belongs to. Devices join a room by
// typing its id and key.
type roomModel struct {
	ctx context.Context
	svc service.RoomService

	room      models.Room
	join      *form
	confirm   *confirmModel
	revealKey bool

	status string
	errMsg string
}

func newRoomModel(ctx context.Context, svc service.RoomService) *roomModel {
	return &roomModel{ctx: ctx, svc: svc}
}

func (m *roomModel) Init() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		room, err := svc.Current(ctx)
		return roomLoadedMsg{room: room, err: err}
	}
}

func (m *roomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roomLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.room = msg.room
		m.status, m.errMsg = msg.status, ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Room copied"
		return m, nil
	}

	if m.confirm != nil {
		keyMsg, ok := msg.(tea.KeyMsg)
		if !ok {
			return m, nil
		}
		answered, yes := m.confirm.answer(keyMsg)
		if !answered {
			return m, nil
		}
		m.confirm = nil
		if yes {
			return m, m.cmdRegenerate()
		}
		return m, nil
	}

	if m.join != nil {
		submitted, cancelled, cmd := m.join.update(msg)
		switch {
		case cancelled:
			m.join = nil
			return m, nil
		case !submitted:
			return m, cmd
		}
		room := models.Room{ID: m.join.value(0), Key: m.join.value(1)}
		if !room.Valid() {
			m.join.err = "both the room id and the key are required"
			return m, nil
		}
		m.join = nil
		return m, m.cmdJoin(room)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, back()
	case key.Matches(keyMsg, keys.toggle):
		m.revealKey = !m.revealKey
	case key.Matches(keyMsg, keys.copy):
		if m.room.Valid() {
			return m, cmdCopy(m.room.ID + " " + m.room.Key)
		}
	case key.Matches(keyMsg, keys.join):
		m.join = newForm("JOIN ROOM", "Room ID", "Key")
	case key.Matches(keyMsg, keys.refresh):
		m.confirm = &confirmModel{question: "Create a new room? Devices of the old room will stop receiving your data."}
	}
	return m, nil
}

func (m *roomModel) cmdRegenerate() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		room, err := svc.Regenerate(ctx)
		return roomLoadedMsg{room: room, status: "New room created", err: err}
	}
}

func (m *roomModel) cmdJoin(room models.Room) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if err := svc.Join(ctx, room); err != nil {
			return roomLoadedMsg{err: err}
		}
		return roomLoadedMsg{room: room, status: "Joined room " + room.ID}
	}
}

func (m *roomModel) View() string {
	if m.join != nil {
		return m.join.View()
	}

	var b strings.Builder
	b.WriteString("Room ID : " + valueOrDash(m.room.ID) + "\n")
	k := strings.Repeat("•", 16)
	if m.revealKey {
		k = m.room.Key
	}
	if m.room.Key == "" {
		k = "-"
	}
	b.WriteString("Key     : " + k + "\n")
	writeStatus(&b, m.status, m.errMsg)
	if m.confirm != nil {
		b.WriteString("\n" + m.confirm.View() + "\n")
	}

	return renderPage("ROOM", b.String(), "space: show key │ c: copy │ j: join │ r: new room │ esc: back")
}
