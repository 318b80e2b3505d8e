package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/qr"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// exportRequest opens the export page for collection. An empty key exports
// every record.
type exportRequest struct {
	collection models.Collection
	key        string
}

type exportLoadedMsg struct {
	resp models.ExportResponse
	err  error
}

type copiedMsg struct {
	err error
}

// writeClipboard is swapped in tests; headless machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type exportModel struct {
	ctx      context.Context
	svc      service.ExportService
	renderer qr.Renderer

	request    exportRequest
	transferID string
	parts      []string
	idx        int
	code       string
	loading    bool

	status string
	errMsg string
}

func newExportModel(ctx context.Context, svc service.ExportService, renderer qr.Renderer) *exportModel {
	return &exportModel{ctx: ctx, svc: svc, renderer: renderer}
}

func (m *exportModel) Init() tea.Cmd {
	if m.request.collection.Name == "" {
		return nil
	}
	return m.cmdLoad()
}

func (m *exportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportRequest:
		m.request = msg
		m.parts, m.idx, m.code, m.transferID = nil, 0, "", ""
		m.status, m.errMsg = "", ""
		m.loading = true
		return m, m.cmdLoad()
	case exportLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.transferID = msg.resp.TransferID
		m.parts = msg.resp.Parts
		m.idx = 0
		m.render()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Part %d copied", m.idx+1)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, back()
		case key.Matches(msg, keys.next):
			if m.idx < len(m.parts)-1 {
				m.idx++
				m.render()
			}
		case key.Matches(msg, keys.prev):
			if m.idx > 0 {
				m.idx--
				m.render()
			}
		case key.Matches(msg, keys.copy):
			if part, ok := m.current(); ok {
				return m, cmdCopy(part)
			}
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

func (m *exportModel) current() (string, bool) {
	if m.idx < 0 || m.idx >= len(m.parts) {
		return "", false
	}
	return m.parts[m.idx], true
}

// render draws the current part. Parts too dense for a code stay readable
// as text so they can still be copied.
func (m *exportModel) render() {
	m.code, m.errMsg, m.status = "", "", ""
	part, ok := m.current()
	if !ok {
		return
	}
	code, err := m.renderer.Terminal(part)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.code = code
}

func (m *exportModel) cmdLoad() tea.Cmd {
	ctx, svc, req := m.ctx, m.svc, m.request
	return func() tea.Msg {
		resp, err := svc.Export(ctx, models.LocalNamespace, req.collection, req.key)
		return exportLoadedMsg{resp: resp, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func (m *exportModel) View() string {
	title := "QR EXPORT: " + strings.ToUpper(m.request.collection.Name)
	if m.request.key != "" {
		title += " / " + m.request.key
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Preparing codes...\n")
	case len(m.parts) == 0:
		b.WriteString("Nothing to export\n")
	default:
		b.WriteString(fmt.Sprintf("Part %d of %d   transfer %s\n\n", m.idx+1, len(m.parts), m.transferID))
		if m.code != "" {
			b.WriteString(m.code)
		} else if part, ok := m.current(); ok {
			b.WriteString(part + "\n")
		}
		b.WriteString("\nScan every part on the other device, in any order.\n")
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage(title, b.String(), "n/→: next part │ p/←: previous │ c: copy text │ r: regenerate │ esc: back")
}
