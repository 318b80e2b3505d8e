package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sos-relay/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title   string
	page    string
	payload tea.Msg
}

type MenuModel struct {
	items []menuItem
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Shelters", page: pageShelters},
			{title: "Rescue status", page: pageRescue},
			{title: "Family check-in", page: pageFamily},
			{title: "Group messages", page: pageMessages},
			{title: "Show shelters as QR", page: pageExport, payload: exportRequest{collection: models.Shelters}},
			{title: "Show rescue status as QR", page: pageExport, payload: exportRequest{collection: models.Rescue}},
			{title: "Scan QR (paste)", page: pageImport},
			{title: "Sync with hub", page: pageSync},
			{title: "Room", page: pageRoom},
			{title: "Health desk", page: pageHealth},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case "down", "j":
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case "enter":
		item := m.items[m.idx]
		return m, navigate(item.page, item.payload)
	default:
		// digits jump straight to an entry
		if n := keyMsg.String(); len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
			if i := int(n[0] - '1'); i < len(m.items) {
				m.idx = i
				item := m.items[i]
				return m, navigate(item.page, item.payload)
			}
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		marker := " "
		if i == m.idx {
			marker = ">"
		}
		idCell := fmt.Sprintf("%s %d", marker, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("SOS RELAY", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ 1-9: jump │ v: version")
}
