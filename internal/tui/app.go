package tui

import (
	"github.com/MKhiriev/go-sos-relay/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageShelters = "shelters"
	pageRescue   = "rescue"
	pageFamily   = "family"
	pageHealth   = "health"
	pageMessages = "messages"
	pageExport   = "export"
	pageImport   = "import"
	pageSync     = "sync"
	pageRoom     = "room"
)

// maxHistory bounds the back stack; older entries fall off.
const maxHistory = 16

// RootModel routes messages between pages. It owns the global keys, the build
// info overlay and a back stack, so leaving a page returns to the one that
// opened it. Every other message goes to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	page    string
	history []string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		page:      startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := r.handleGlobalKey(msg); handled {
			return next, cmd
		}
	case NavigateTo:
		return r.open(msg)
	case goBack:
		return r.back()
	}

	if r.current == nil {
		return r, nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) handleGlobalKey(key tea.KeyMsg) (RootModel, tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+c":
		r.quitByUser = true
		return r, tea.Quit, true
	case "v":
		if r.page == pageMenu {
			r.showBuildInfo = !r.showBuildInfo
			return r, nil, true
		}
	case "esc":
		if r.showBuildInfo {
			r.showBuildInfo = false
			return r, nil, true
		}
	}
	// the overlay swallows every other key
	return r, nil, r.showBuildInfo
}

func (r RootModel) open(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	if nav.Page != r.page {
		r.history = append(r.history, r.page)
		if len(r.history) > maxHistory {
			r.history = r.history[len(r.history)-maxHistory:]
		}
	}
	if nav.Page == pageMenu {
		r.history = nil
	}
	r.switchTo(nav.Page, next)

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

func (r RootModel) back() (tea.Model, tea.Cmd) {
	target := pageMenu
	for len(r.history) > 0 {
		target = r.history[len(r.history)-1]
		r.history = r.history[:len(r.history)-1]
		if _, ok := r.pages[target]; ok {
			break
		}
		target = pageMenu
	}

	next, ok := r.pages[target]
	if !ok {
		return r, nil
	}
	r.switchTo(target, next)
	return r, r.current.Init()
}

func (r *RootModel) switchTo(page string, model tea.Model) {
	r.showBuildInfo = false
	r.current = model
	r.page = page
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("SOS RELAY", "", "")
	}
	return r.current.View()
}

// Page returns the name of the active page.
func (r RootModel) Page() string {
	return r.page
}
