package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type rescueLoadedMsg struct {
	items []models.RescueReport
	err   error
}

type rescueModel struct {
	ctx context.Context
	svc service.RescueService

	items []models.RescueReport
	idx   int
	form  *form

	status string
	errMsg string
}

func newRescueModel(ctx context.Context, svc service.RescueService) *rescueModel {
	return &rescueModel{ctx: ctx, svc: svc}
}

func (m *rescueModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *rescueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rescueLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.items = msg.items
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case actionDoneMsg:
		if msg.page != pageRescue {
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
	case key.Matches(keyMsg, keys.add):
		m.form = newForm("RESCUE STATUS", "People", "Injured", "Needs", "Note", "Status").
			set(0, "1").set(1, "0").set(4, string(models.RescueNeedHelp))
		if latest, ok := m.latest(); ok {
			m.form.set(0, strconv.Itoa(latest.People)).
				set(1, strconv.Itoa(latest.Injured)).
				set(2, strings.Join(latest.Needs, ", ")).
				set(3, latest.Note).
				set(4, string(latest.Status))
		}
	case key.Matches(keyMsg, keys.export):
		if r, ok := m.current(); ok {
			return m, navigate(pageExport, exportRequest{collection: models.Rescue, key: r.ID})
		}
	case key.Matches(keyMsg, keys.exportAll):
		return m, navigate(pageExport, exportRequest{collection: models.Rescue})
	}
	return m, nil
}

func (m *rescueModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.form.update(msg)
	switch {
	case cancelled:
		m.form = nil
		return m, nil
	case !submitted:
		return m, cmd
	}

	report, err := rescueFromForm(m.form)
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}
	m.form = nil
	return m, m.cmdReport(report)
}

func (m *rescueModel) current() (models.RescueReport, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.RescueReport{}, false
	}
	return m.items[m.idx], true
}

// latest is the newest report; List orders newest first.
func (m *rescueModel) latest() (models.RescueReport, bool) {
	if len(m.items) == 0 {
		return models.RescueReport{}, false
	}
	return m.items[0], true
}

func (m *rescueModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return rescueLoadedMsg{items: items, err: err}
	}
}

func (m *rescueModel) cmdReport(report models.RescueReport) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		_, err := svc.Report(ctx, report)
		return actionDoneMsg{page: pageRescue, status: "Status saved. Show it as QR with x", err: err}
	}
}

func (m *rescueModel) View() string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	if len(m.items) == 0 {
		b.WriteString("No reports yet. Press a to report your status\n")
	}
	for i, r := range m.items {
		b.WriteString(fmt.Sprintf("%s%-10s people %-3d injured %-3d %s\n",
			cursor(i == m.idx), r.Status, r.People, r.Injured, r.TS))
	}
	if r, ok := m.current(); ok {
		b.WriteString("\nNeeds: " + valueOrDash(strings.Join(r.Needs, ", ")) + "\n")
		b.WriteString("Note:  " + valueOrDash(r.Note) + "\n")
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("RESCUE STATUS", b.String(), "a: report │ x: QR of selected │ e: QR of all │ esc: back")
}

func rescueFromForm(f *form) (models.RescueReport, error) {
	people, err := strconv.Atoi(f.value(0))
	if err != nil || people < 1 {
		return models.RescueReport{}, fmt.Errorf("people %w of at least 1", errBadNumber)
	}
	injured := 0
	if v := f.value(1); v != "" {
		injured, err = strconv.Atoi(v)
		if err != nil || injured < 0 || injured > people {
			return models.RescueReport{}, fmt.Errorf("injured %w between 0 and %d", errBadNumber, people)
		}
	}

	status := models.RescueStatus(strings.ToLower(f.value(4)))
	if !status.Valid() {
		return models.RescueReport{}, fmt.Errorf("status must be %s, %s or %s",
			models.RescueNeedHelp, models.RescueSafe, models.RescueEvacuated)
	}

	var needs []string
	for _, need := range strings.Split(f.value(2), ",") {
		if need = strings.TrimSpace(need); need != "" {
			needs = append(needs, need)
		}
	}

	return models.RescueReport{
		People:  people,
		Injured: injured,
		Needs:   needs,
		Note:    f.value(3),
		Status:  status,
	}, nil
}
