package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek2312Singh/complain-management-system/internal/session"
	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// Admin tab order.
const (
	tabProfile = iota
	tabManagers
	tabPending
	tabInProcess
	tabClosed
	tabCount
)

var tabTitles = [tabCount]string{"Profile", "Managers", "Pending", "In Process", "Closed"}

// Model is the root program model. The presence of a session token is the
// only thing that decides between the public surface and the admin panel.
type Model struct {
	gw    Gateway
	cache Cache
	sess  *session.Session
	keys  keyMap

	width  int
	height int

	public publicModel
	login  *loginModel

	activeTab int
	profile   profileModel
	managers  managersModel
	panels    [3]panelModel
	// loaded marks admin tabs whose first fetch already ran.
	loaded [tabCount]bool

	showHelp bool
}

// New assembles the root model. policy selects the detail-fetch failure
// behavior for the status panels.
func New(gw Gateway, cache Cache, sess *session.Session, policy string) Model {
	keys := newKeyMap()
	return Model{
		gw:       gw,
		cache:    cache,
		sess:     sess,
		keys:     keys,
		public:   newPublicModel(gw, cache),
		profile:  newProfileModel(gw, keys),
		managers: newManagersModel(gw, keys),
		panels: [3]panelModel{
			newPanelModel(gw, view.StatusPending, policy, keys),
			newPanelModel(gw, view.StatusInProcess, policy, keys),
			newPanelModel(gw, view.StatusClosed, policy, keys),
		},
		activeTab: tabPending,
	}
}

func (m Model) Init() tea.Cmd {
	if m.sess.Authenticated() {
		return m.activateTab(m.activeTab)
	}
	return nil
}

// activateTab triggers the first fetch for a tab. Subsequent visits reuse
// what is already loaded; r refreshes explicitly.
func (m *Model) activateTab(tab int) tea.Cmd {
	if m.loaded[tab] {
		return nil
	}
	m.loaded[tab] = true
	switch tab {
	case tabProfile:
		return m.profile.load()
	case tabManagers:
		return m.managers.load()
	default:
		var cmd tea.Cmd
		m.panels[tab-tabPending], cmd = m.panels[tab-tabPending].refresh()
		return cmd
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginDoneMsg:
		if err := m.sess.SetToken(msg.token); err != nil {
			slog.Error("persisting token failed", "error", err)
		}
		m.login = nil
		m.loaded = [tabCount]bool{}
		m.activeTab = tabPending
		return m, m.activateTab(m.activeTab)

	case loginErrMsg:
		if m.login != nil {
			login, cmd := m.login.Update(msg)
			m.login = &login
			return m, cmd
		}
		return m, nil

	case submitDoneMsg, submitErrMsg, lookupDoneMsg, lookupErrMsg:
		var cmd tea.Cmd
		m.public, cmd = m.public.Update(msg)
		return m, cmd

	case profileLoadedMsg, profileErrMsg, profileSavedMsg, profileSaveErrMsg,
		passwordChangedMsg, passwordErrMsg:
		var cmd tea.Cmd
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd

	case rosterLoadedMsg, rosterErrMsg, managerAddedMsg:
		var cmd tea.Cmd
		m.managers, cmd = m.managers.Update(msg)
		return m, cmd

	case numbersLoadedMsg, numbersErrMsg, detailsLoadedMsg, detailsErrMsg,
		detailOpenedMsg, detailErrMsg, panelRosterMsg, managerPickedMsg,
		assignDoneMsg, assignErrMsg, noticeExpiredMsg:
		var cmds []tea.Cmd
		for i := range m.panels {
			var cmd tea.Cmd
			m.panels[i], cmd = m.panels[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	// Component messages (cursor blinks, paste results) reach whichever
	// surface owns the focused input.
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.login != nil {
		login, cmd := m.login.Update(msg)
		m.login = &login
		return m, cmd
	}
	if !m.sess.Authenticated() {
		var cmd tea.Cmd
		m.public, cmd = m.public.Update(msg)
		return m, cmd
	}
	switch m.activeTab {
	case tabProfile:
		var cmd tea.Cmd
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	case tabManagers:
		var cmd tea.Cmd
		m.managers, cmd = m.managers.Update(msg)
		return m, cmd
	default:
		i := m.activeTab - tabPending
		var cmd tea.Cmd
		m.panels[i], cmd = m.panels[i].Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.login != nil {
		if msg.String() == "esc" {
			m.login = nil
			return m, nil
		}
		login, cmd := m.login.Update(msg)
		m.login = &login
		return m, cmd
	}

	if !m.sess.Authenticated() {
		if key.Matches(msg, m.keys.Login) {
			login := newLoginModel(m.gw)
			m.login = &login
			return m, nil
		}
		var cmd tea.Cmd
		m.public, cmd = m.public.Update(msg)
		return m, cmd
	}

	// Admin mode.
	if key.Matches(msg, m.keys.Logout) {
		if err := m.sess.Clear(); err != nil {
			slog.Error("clearing token failed", "error", err)
		}
		m.loaded = [tabCount]bool{}
		m.public = newPublicModel(m.gw, m.cache)
		return m, nil
	}

	capturing := m.capturingText()
	if !capturing {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, m.activateTab(m.activeTab)
		case key.Matches(msg, m.keys.Prev):
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, m.activateTab(m.activeTab)
		}
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.activeTab {
	case tabProfile:
		var cmd tea.Cmd
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	case tabManagers:
		var cmd tea.Cmd
		m.managers, cmd = m.managers.Update(msg)
		return m, cmd
	default:
		i := m.activeTab - tabPending
		var cmd tea.Cmd
		m.panels[i], cmd = m.panels[i].Update(msg)
		return m, cmd
	}
}

// capturingText reports whether the active admin surface owns the keyboard
// for text entry, in which case tab switching and help stay out of the way.
func (m Model) capturingText() bool {
	switch m.activeTab {
	case tabProfile:
		return m.profile.mode != profileViewing
	case tabManagers:
		return m.managers.adding
	default:
		p := m.panels[m.activeTab-tabPending]
		return p.filtering || p.picker != nil
	}
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}

	var body string
	switch {
	case m.login != nil:
		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Complain Management System"),
			m.login.View())
	case !m.sess.Authenticated():
		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Complain Management System"),
			m.public.View(width))
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderTabs(),
			m.renderActive(width))
		if m.showHelp {
			body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelp())
		}
	}
	return body
}

func (m Model) renderTabs() string {
	parts := make([]string, tabCount)
	for i, title := range tabTitles {
		if i == m.activeTab {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = tabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderActive(width int) string {
	switch m.activeTab {
	case tabProfile:
		return m.profile.View(width - 2)
	case tabManagers:
		return m.managers.View(width - 2)
	default:
		return m.panels[m.activeTab-tabPending].View(width - 2)
	}
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Next, m.keys.Prev, m.keys.Refresh, m.keys.Filter,
		m.keys.Open, m.keys.Assign, m.keys.Submit,
		m.keys.Help, m.keys.Logout, m.keys.Quit,
	}
	var b strings.Builder
	for i, binding := range bindings {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(helpKeyStyle.Render(binding.Help().Key))
		b.WriteString(" ")
		b.WriteString(helpDescStyle.Render(binding.Help().Desc))
	}
	return overlayStyle.Render(b.String())
}
