package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var errBadNumber = errors.New("must be a number")

type sheltersLoadedMsg struct {
	items []models.Shelter
	err   error
}

type sheltersModel struct {
	ctx context.Context
	svc service.ShelterService

	items  []models.Shelter
	idx    int
	filter models.ShelterStatus

	add     *form
	locate  *form
	confirm *confirmModel

	status string
	errMsg string
}

func newSheltersModel(ctx context.Context, svc service.ShelterService) *sheltersModel {
	return &sheltersModel{ctx: ctx, svc: svc}
}

func (m *sheltersModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *sheltersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sheltersLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.items = msg.items
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case actionDoneMsg:
		if msg.page != pageShelters {
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
	case m.add != nil:
		return m.updateAdd(msg)
	case m.locate != nil:
		return m.updateLocate(msg)
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
	case key.Matches(keyMsg, keys.filter):
		m.filter = nextShelterFilter(m.filter)
		m.idx = 0
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.add):
		m.add = newForm("NEW SHELTER", "Name", "Status", "Capacity", "Latitude", "Longitude", "Notes").
			set(1, string(models.ShelterOpen))
	case key.Matches(keyMsg, keys.mine):
		m.locate = newForm("MY SHELTER", "Latitude", "Longitude")
	case key.Matches(keyMsg, keys.delete):
		if sh, ok := m.current(); ok {
			m.confirm = &confirmModel{question: fmt.Sprintf("Delete %q?", sh.Name), target: sh.ID}
		}
	case key.Matches(keyMsg, keys.export):
		if sh, ok := m.current(); ok {
			return m, navigate(pageExport, exportRequest{collection: models.Shelters, key: sh.ID})
		}
	case key.Matches(keyMsg, keys.exportAll):
		return m, navigate(pageExport, exportRequest{collection: models.Shelters})
	}
	return m, nil
}

func (m *sheltersModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	return m, m.cmdDelete(id)
}

func (m *sheltersModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.add.update(msg)
	switch {
	case cancelled:
		m.add = nil
		return m, nil
	case !submitted:
		return m, cmd
	}

	shelter, err := shelterFromForm(m.add)
	if err != nil {
		m.add.err = err.Error()
		return m, nil
	}
	m.add = nil
	return m, m.cmdAdd(shelter)
}

func (m *sheltersModel) updateLocate(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.locate.update(msg)
	switch {
	case cancelled:
		m.locate = nil
		return m, nil
	case !submitted:
		return m, cmd
	}

	lat, lon, err := parseCoords(m.locate.value(0), m.locate.value(1))
	if err != nil {
		m.locate.err = err.Error()
		return m, nil
	}
	m.locate = nil
	return m, m.cmdMarkMine(lat, lon)
}

func (m *sheltersModel) current() (models.Shelter, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Shelter{}, false
	}
	return m.items[m.idx], true
}

func (m *sheltersModel) cmdLoad() tea.Cmd {
	ctx, svc, filter := m.ctx, m.svc, m.filter
	return func() tea.Msg {
		items, err := svc.List(ctx, filter)
		return sheltersLoadedMsg{items: items, err: err}
	}
}

func (m *sheltersModel) cmdAdd(shelter models.Shelter) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		saved, err := svc.Add(ctx, shelter)
		return actionDoneMsg{page: pageShelters, status: "Shelter " + saved.Name + " added", err: err}
	}
}

func (m *sheltersModel) cmdMarkMine(lat, lon float64) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		saved, err := svc.MarkNearestAsMine(ctx, lat, lon, "")
		return actionDoneMsg{page: pageShelters, status: saved.Name + " is now my shelter", err: err}
	}
}

func (m *sheltersModel) cmdDelete(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return actionDoneMsg{page: pageShelters, status: "Shelter deleted", err: err}
	}
}

func (m *sheltersModel) View() string {
	if m.add != nil {
		return m.add.View()
	}
	if m.locate != nil {
		return m.locate.View()
	}

	var b strings.Builder
	b.WriteString("Filter: " + shelterFilterLabel(m.filter) + "\n\n")
	if len(m.items) == 0 {
		b.WriteString("No shelters\n")
	}
	for i, sh := range m.items {
		mine := ""
		if sh.Mine {
			mine = " ★"
		}
		b.WriteString(fmt.Sprintf("%s%-28s %-8s cap %-5d %s%s\n",
			cursor(i == m.idx), fitText(sh.Name, 28), sh.Status, sh.Capacity, formatCoords(sh.Lat, sh.Lon), mine))
	}
	if sh, ok := m.current(); ok && sh.Notes != "" {
		b.WriteString("\nNotes: " + sh.Notes + "\n")
	}
	writeStatus(&b, m.status, m.errMsg)
	if m.confirm != nil {
		b.WriteString("\n" + m.confirm.View() + "\n")
	}

	return renderPage("SHELTERS", b.String(),
		"a: add │ m: mark mine │ d: delete │ f: filter │ x: QR of selected │ e: QR of all │ esc: back")
}

func nextShelterFilter(current models.ShelterStatus) models.ShelterStatus {
	if current == "" {
		return models.ShelterStatuses[0]
	}
	for i, s := range models.ShelterStatuses {
		if s == current && i+1 < len(models.ShelterStatuses) {
			return models.ShelterStatuses[i+1]
		}
	}
	return ""
}

func shelterFilterLabel(status models.ShelterStatus) string {
	if status == "" {
		return "all"
	}
	return string(status)
}

func shelterFromForm(f *form) (models.Shelter, error) {
	shelter := models.Shelter{
		Name:   f.value(0),
		Status: models.ShelterStatus(strings.ToLower(f.value(1))),
		Notes:  f.value(5),
	}
	if shelter.Name == "" {
		return models.Shelter{}, service.ErrNoShelterName
	}
	if !shelter.Status.Valid() {
		return models.Shelter{}, fmt.Errorf("status must be one of %v", models.ShelterStatuses)
	}
	if v := f.value(2); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return models.Shelter{}, fmt.Errorf("capacity %w", errBadNumber)
		}
		shelter.Capacity = n
	}

	var err error
	shelter.Lat, shelter.Lon, err = parseCoords(f.value(3), f.value(4))
	if err != nil {
		return models.Shelter{}, err
	}
	return shelter, nil
}

func parseCoords(latText, lonText string) (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(latText, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude %w between -90 and 90", errBadNumber)
	}
	lon, err = strconv.ParseFloat(lonText, 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("longitude %w between -180 and 180", errBadNumber)
	}
	return lat, lon, nil
}
