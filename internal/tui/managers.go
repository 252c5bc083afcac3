package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// managersModel lists the manager roster and hosts the add-manager form.
type managersModel struct {
	gw   Gateway
	keys keyMap

	loading  bool
	managers []view.Manager
	errMsg   string
	notice   string
	cursor   int

	adding bool
	inputs []textinput.Model
	focus  int
}

func newManagersModel(gw Gateway, keys keyMap) managersModel {
	m := managersModel{gw: gw, keys: keys, loading: true}
	for _, placeholder := range []string{"Full name", "Email", "Mobile"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = ""
		m.inputs = append(m.inputs, in)
	}
	return m
}

func (m managersModel) load() tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		payloads, err := gw.Managers(context.Background())
		if err != nil {
			return rosterErrMsg{err: err}
		}
		return rosterLoadedMsg{payloads: payloads}
	}
}

func (m managersModel) Update(msg tea.Msg) (managersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.managers = m.managers[:0]
		for _, p := range msg.payloads {
			m.managers = append(m.managers, view.NormalizeManager(p))
		}
		if m.cursor >= len(m.managers) {
			m.cursor = 0
		}
		return m, nil
	case rosterErrMsg:
		m.loading = false
		slog.Error("manager roster load failed", "error", msg.err)
		m.errMsg = "Could not load managers."
		return m, nil
	case managerAddedMsg:
		m.adding = false
		m.notice = msg.message
		if m.notice == "" {
			m.notice = "Manager added."
		}
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.loading = true
		return m, m.load()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.adding {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m managersModel) handleKey(msg tea.KeyMsg) (managersModel, tea.Cmd) {
	if m.adding {
		switch msg.String() {
		case "esc":
			m.adding = false
			m.errMsg = ""
			return m, nil
		case "tab", "enter":
			if msg.String() == "enter" && m.focus == len(m.inputs)-1 {
				return m.submit()
			}
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "ctrl+s":
			return m.submit()
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.notice = ""
		m.setFocus(0)
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.load()
	case key.Matches(msg, m.keys.NavUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.NavDown):
		if m.cursor < len(m.managers)-1 {
			m.cursor++
		}
		return m, nil
	}
	return m, nil
}

func (m *managersModel) setFocus(i int) {
	m.focus = i
	for idx := range m.inputs {
		if idx == i {
			m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
}

func (m managersModel) submit() (managersModel, tea.Cmd) {
	fullName := strings.TrimSpace(m.inputs[0].Value())
	email := strings.TrimSpace(m.inputs[1].Value())
	mobile := strings.TrimSpace(m.inputs[2].Value())
	if fullName == "" || email == "" || mobile == "" {
		m.errMsg = "All fields are required."
		return m, nil
	}
	m.errMsg = ""
	gw := m.gw
	return m, func() tea.Msg {
		text, err := gw.AddManager(context.Background(), fullName, email, mobile)
		if err != nil {
			return rosterErrMsg{err: err}
		}
		return managerAddedMsg{message: text}
	}
}

func (m managersModel) View(width int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Managers"))

	switch {
	case m.adding:
		for i, label := range []string{"Full Name", "Email", "Mobile"} {
			rows = append(rows, labelStyle.Render(label)+"\n"+m.inputs[i].View())
		}
		rows = append(rows, helpDescStyle.Render("ctrl+s add · esc cancel"))
	case m.loading:
		rows = append(rows, subtitleStyle.Render("Loading managers..."))
	case len(m.managers) == 0:
		rows = append(rows, subtitleStyle.Render("No managers yet."))
		rows = append(rows, helpDescStyle.Render("a add manager · r reload"))
	default:
		columns := []string{"Name", "Username", "Email", "Mobile"}
		cells := make([][]string, len(m.managers))
		for i, mgr := range m.managers {
			cells[i] = []string{
				view.Display(mgr.Name),
				view.Display(mgr.Username),
				view.Display(mgr.Email),
				view.Display(mgr.Mobile),
			}
		}
		rows = append(rows, renderTable(columns, cells, m.cursor))
		rows = append(rows, helpDescStyle.Render("a add manager · r reload"))
	}

	if m.errMsg != "" {
		rows = append(rows, errorStyle.Render(m.errMsg))
	}
	if m.notice != "" {
		rows = append(rows, noticeStyle.Render(m.notice))
	}
	return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
