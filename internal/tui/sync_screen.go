package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type syncDoneMsg struct {
	reports []models.SyncReport
	err     error
}

type syncModel struct {
	ctx context.Context
	svc service.HubSyncService

	spinner spinner.Model
	running bool
	reports []models.SyncReport
	errMsg  string
}

func newSyncModel(ctx context.Context, svc service.HubSyncService) *syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &syncModel{ctx: ctx, svc: svc, spinner: s}
}

func (m *syncModel) Init() tea.Cmd {
	return nil
}

func (m *syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncDoneMsg:
		m.running = false
		m.reports = msg.reports
		m.errMsg = humanizeHubError(msg.err)
		return m, nil
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, back()
		case key.Matches(msg, keys.sync), key.Matches(msg, keys.enter):
			if m.running {
				return m, nil
			}
			m.running = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdSync())
		}
	}
	return m, nil
}

func (m *syncModel) cmdSync() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		reports, err := svc.Sync(ctx)
		return syncDoneMsg{reports: reports, err: err}
	}
}

func (m *syncModel) View() string {
	var b strings.Builder
	if m.running {
		b.WriteString(m.spinner.View() + " Syncing...\n")
	} else if len(m.reports) == 0 && m.errMsg == "" {
		b.WriteString("Press s to exchange data with the hub\n")
	}

	if len(m.reports) > 0 {
		b.WriteString(fmt.Sprintf("%-10s │ %-18s │ %-18s\n", "Collection", "Pulled (new/old)", "Pushed (new/old)"))
		b.WriteString(strings.Repeat("─", 52) + "\n")
		for _, r := range m.reports {
			b.WriteString(fmt.Sprintf("%-10s │ %-18s │ %-18s\n", r.Collection,
				fmt.Sprintf("%d/%d", r.Pulled.Accepted, r.Pulled.Discarded),
				fmt.Sprintf("%d/%d", r.Pushed.Accepted, r.Pushed.Discarded)))
		}
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage("HUB SYNC", b.String(), "s: sync now │ esc: back")
}
