package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek2312Singh/complain-management-system/internal/api"
)

// loginModel is the admin sign-in overlay.
type loginModel struct {
	gw Gateway

	username textinput.Model
	password textinput.Model
	focus    int
	errMsg   string
	busy     bool
}

func newLoginModel(gw Gateway) loginModel {
	m := loginModel{gw: gw}
	m.username = textinput.New()
	m.username.Placeholder = "Username"
	m.username.Prompt = ""
	m.username.Focus()
	m.password = textinput.New()
	m.password.Placeholder = "Password"
	m.password.Prompt = ""
	m.password.EchoMode = textinput.EchoPassword
	return m
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginErrMsg:
		m.busy = false
		if errors.Is(msg.err, api.ErrNoToken) {
			m.errMsg = msg.err.Error()
		} else {
			slog.Error("login failed", "error", msg.err)
			m.errMsg = "Invalid username or password. Please try again."
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.toggleFocus()
				return m, nil
			}
			return m.submit()
		}
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *loginModel) toggleFocus() {
	m.focus = 1 - m.focus
	if m.focus == 0 {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.username.Blur()
	}
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()
	if username == "" || password == "" {
		m.errMsg = "Username and password are required."
		return m, nil
	}
	if m.busy {
		return m, nil
	}
	m.errMsg = ""
	m.busy = true
	gw := m.gw
	return m, func() tea.Msg {
		token, err := gw.Login(context.Background(), username, password)
		if err != nil {
			return loginErrMsg{err: err}
		}
		return loginDoneMsg{token: token}
	}
}

func (m loginModel) View() string {
	rows := []string{
		titleStyle.Render("Admin Login"),
		labelStyle.Render("Username") + "\n" + m.username.View(),
		labelStyle.Render("Password") + "\n" + m.password.View(),
	}
	if m.busy {
		rows = append(rows, subtitleStyle.Render("Signing in..."))
	}
	if m.errMsg != "" {
		rows = append(rows, errorStyle.Render(m.errMsg))
	}
	rows = append(rows, helpDescStyle.Render("enter sign in · esc cancel"))
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
