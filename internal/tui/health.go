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

type healthTab int

const (
	tabPatients healthTab = iota
	tabSupplies
)

type healthLoadedMsg struct {
	patients []models.Patient
	supplies []models.Supply
	err      error
}

type healthReportMsg struct {
	report models.HealthReport
	err    error
}

type healthModel struct {
	ctx context.Context
	svc service.HealthService

	tab      healthTab
	patients []models.Patient
	supplies []models.Supply
	idx      int

	form    *form
	confirm *confirmModel

	// report holds the rendered report while it is shown.
	report string

	status string
	errMsg string
}

func newHealthModel(ctx context.Context, svc service.HealthService) *healthModel {
	return &healthModel{ctx: ctx, svc: svc}
}

func (m *healthModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *healthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.patients, m.supplies = msg.patients, msg.supplies
		m.idx = moveCursor(m.idx, 0, m.rows())
		return m, nil
	case healthReportMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.report, m.status, m.errMsg = msg.report.String(), "", ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Report copied"
		return m, nil
	case actionDoneMsg:
		if msg.page != pageHealth {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status, m.errMsg = msg.status, ""
		return m, m.cmdLoad()
	}

	switch {
	case m.confirm != nil:
		return m.updateConfirm(msg)
	case m.form != nil:
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.report != "" {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.report, m.status = "", ""
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopy(m.report)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, back()
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		m.tab = 1 - m.tab
		m.idx = 0
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, m.rows())
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, m.rows())
	case key.Matches(keyMsg, keys.add):
		if m.tab == tabPatients {
			m.form = newForm("PERSON", "Name", "Status", "Injury/Symptom", "Notes").set(1, string(models.PatientSafe))
		} else {
			m.form = newForm("SUPPLY", "Item", "Amount")
		}
	case key.Matches(keyMsg, keys.toggle), key.Matches(keyMsg, keys.enter):
		if id, _, ok := m.current(); ok && m.tab == tabPatients {
			return m, m.cmdCycle(id)
		}
	case key.Matches(keyMsg, keys.delete):
		if id, label, ok := m.current(); ok {
			m.confirm = &confirmModel{question: fmt.Sprintf("Delete %q?", label), target: id}
		}
	case key.Matches(keyMsg, keys.report):
		return m, m.cmdReport()
	}
	return m, nil
}

func (m *healthModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	answered, yes := m.confirm.answer(keyMsg)
	if !answered {
		return m, nil
	}
	id := m.confirm.target
	m.confirm = nil
	if !yes {
		return m, nil
	}
	return m, m.cmdDelete(m.collection(), id)
}

func (m *healthModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.form.update(msg)
	switch {
	case cancelled:
		m.form = nil
		return m, nil
	case !submitted:
		return m, cmd
	}

	if m.tab == tabSupplies {
		supply := models.Supply{Item: m.form.value(0), Amount: m.form.value(1)}
		if supply.Item == "" {
			m.form.err = "item is required"
			return m, nil
		}
		m.form = nil
		return m, m.cmdAddSupply(supply)
	}

	patient := models.Patient{
		Name:   m.form.value(0),
		Status: models.PatientStatus(strings.ToLower(m.form.value(1))),
		Injury: m.form.value(2),
		Notes:  m.form.value(3),
	}
	switch {
	case patient.Name == "":
		m.form.err = "name is required"
		return m, nil
	case patient.Status != "" && !patient.Status.Valid():
		m.form.err = fmt.Sprintf("status must be one of %s", joinStatuses(models.PatientStatuses))
		return m, nil
	}
	m.form = nil
	return m, m.cmdAddPatient(patient)
}

func (m *healthModel) rows() int {
	if m.tab == tabSupplies {
		return len(m.supplies)
	}
	return len(m.patients)
}

func (m *healthModel) collection() models.Collection {
	if m.tab == tabSupplies {
		return models.Supplies
	}
	return models.Patients
}

// current returns the id and label of the selected row.
func (m *healthModel) current() (id, label string, ok bool) {
	if m.idx < 0 || m.idx >= m.rows() {
		return "", "", false
	}
	if m.tab == tabSupplies {
		return m.supplies[m.idx].ID, m.supplies[m.idx].Item, true
	}
	return m.patients[m.idx].ID, m.patients[m.idx].Name, true
}

func (m *healthModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		patients, err := svc.ListPatients(ctx)
		if err != nil {
			return healthLoadedMsg{err: err}
		}
		supplies, err := svc.ListSupplies(ctx)
		return healthLoadedMsg{patients: patients, supplies: supplies, err: err}
	}
}

func (m *healthModel) cmdAddPatient(patient models.Patient) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		saved, err := svc.AddPatient(ctx, patient)
		return actionDoneMsg{page: pageHealth, status: saved.Name + " added", err: err}
	}
}

func (m *healthModel) cmdAddSupply(supply models.Supply) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		saved, err := svc.AddSupply(ctx, supply)
		return actionDoneMsg{page: pageHealth, status: saved.Item + " added", err: err}
	}
}

func (m *healthModel) cmdCycle(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		patient, err := svc.CycleStatus(ctx, id)
		return actionDoneMsg{page: pageHealth, status: fmt.Sprintf("%s is %s", patient.Name, patient.Status), err: err}
	}
}

func (m *healthModel) cmdDelete(collection models.Collection, id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		err := svc.Delete(ctx, collection, id)
		return actionDoneMsg{page: pageHealth, status: "Deleted", err: err}
	}
}

func (m *healthModel) cmdReport() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		report, err := svc.Report(ctx)
		return healthReportMsg{report: report, err: err}
	}
}

func (m *healthModel) View() string {
	if m.form != nil {
		return m.form.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	if m.report != "" {
		b.WriteString(m.report)
		writeStatus(&b, m.status, m.errMsg)
		return renderPage("HEALTH REPORT", b.String(), "c: copy │ esc: close")
	}

	if m.tab == tabPatients {
		b.WriteString("[People]  Supplies\n\n")
		m.writePatients(&b)
	} else {
		b.WriteString(" People  [Supplies]\n\n")
		m.writeSupplies(&b)
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("HEALTH DESK", b.String(),
		"tab: switch list │ a: add │ space: next status │ d: delete │ g: report │ esc: back")
}

func (m *healthModel) writePatients(b *strings.Builder) {
	if len(m.patients) == 0 {
		b.WriteString("Nobody logged\n")
		return
	}
	counts := make(map[models.PatientStatus]int, len(models.PatientStatuses))
	for i, p := range m.patients {
		counts[p.Status]++
		b.WriteString(fmt.Sprintf("%s%-20s %-9s %-18s %s\n",
			cursor(i == m.idx), fitText(p.Name, 20), p.Status, fitText(valueOrDash(p.Injury), 18), p.Notes))
	}
	b.WriteString(fmt.Sprintf("\n%d total │ safe %d │ injured %d │ critical %d │ deceased %d\n",
		len(m.patients), counts[models.PatientSafe], counts[models.PatientInjured],
		counts[models.PatientCritical], counts[models.PatientDeceased]))
}

func (m *healthModel) writeSupplies(b *strings.Builder) {
	if len(m.supplies) == 0 {
		b.WriteString("No supplies logged\n")
		return
	}
	for i, s := range m.supplies {
		b.WriteString(fmt.Sprintf("%s%-24s %s\n", cursor(i == m.idx), fitText(s.Item, 24), valueOrDash(s.Amount)))
	}
}

func joinStatuses(statuses []models.PatientStatus) string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return strings.Join(out, ", ")
}
