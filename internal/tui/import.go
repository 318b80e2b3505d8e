package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type importDoneMsg struct {
	result models.ImportResult
	err    error
}

// importModel accepts the text of scanned codes, one part at a time.
type importModel struct {
	ctx context.Context
	svc service.ImportService

	collections []models.Collection
	cidx        int
	area        textarea.Model
	last        models.ImportResult
	submitting  bool

	status string
	errMsg string
}

func newImportModel(ctx context.Context, svc service.ImportService) *importModel {
	area := textarea.New()
	area.Placeholder = "Paste the text of one QR code"
	area.SetWidth(60)
	area.SetHeight(5)
	area.Focus()

	var relayable []models.Collection
	for _, c := range models.Collections {
		if c.Relayable() {
			relayable = append(relayable, c)
		}
	}

	return &importModel{ctx: ctx, svc: svc, collections: relayable, area: area}
}

func (m *importModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *importModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.applyResult(msg.result)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, back()
		case key.Matches(msg, keys.tab):
			m.cidx = (m.cidx + 1) % len(m.collections)
			return m, nil
		case key.Matches(msg, keys.cancel):
			if m.last.TransferID != "" && m.svc.Cancel(m.last.TransferID) {
				m.status, m.errMsg = "Transfer "+m.last.TransferID+" cancelled", ""
				m.last = models.ImportResult{}
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			text := strings.TrimSpace(m.area.Value())
			if text == "" || m.submitting {
				return m, nil
			}
			m.submitting = true
			m.area.Reset()
			return m, m.cmdImport(m.collections[m.cidx], text)
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *importModel) applyResult(res models.ImportResult) {
	m.last = res
	m.status, m.errMsg = "", ""
	switch res.Status {
	case models.ImportRejected:
		m.errMsg = "code rejected: " + res.Reason
	case models.ImportDuplicate:
		m.status = fmt.Sprintf("Part already scanned (%d of %d)", res.Received, res.Expected)
	case models.ImportInProgress:
		m.status = fmt.Sprintf("Part received (%d of %d). Scan the next one", res.Received, res.Expected)
	case models.ImportCompleted:
		m.status = fmt.Sprintf("Transfer complete: %d records merged, %d kept as newer here", res.Accepted, res.Discarded)
	}
}

func (m *importModel) cmdImport(collection models.Collection, text string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		res, err := svc.Import(ctx, models.LocalNamespace, collection, text)
		return importDoneMsg{result: res, err: err}
	}
}

func (m *importModel) View() string {
	var b strings.Builder
	b.WriteString("Collection: " + m.collections[m.cidx].Name + "\n\n")
	b.WriteString(m.area.View())
	b.WriteString("\n")
	if m.last.Status == models.ImportInProgress || m.last.Status == models.ImportDuplicate {
		b.WriteString(fmt.Sprintf("\nTransfer %s: %s\n", m.last.TransferID, progressBar(m.last.Received, m.last.Expected)))
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("SCAN QR", b.String(), "enter: submit part │ tab: switch collection │ ctrl+x: cancel transfer │ esc: back")
}

func progressBar(received, expected int) string {
	if expected <= 0 {
		return ""
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("■", received), strings.Repeat("·", max(expected-received, 0)), received, expected)
}
