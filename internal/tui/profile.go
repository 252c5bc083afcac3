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

type profileMode int

const (
	profileViewing profileMode = iota
	profileEditing
	profileResetting
)

// profileModel shows the signed-in admin's account and hosts the contact
// edit and password reset forms.
type profileModel struct {
	gw   Gateway
	keys keyMap

	mode    profileMode
	loading bool
	payload view.Payload
	errMsg  string
	notice  string

	email  textinput.Model
	mobile textinput.Model

	current textinput.Model
	updated textinput.Model
	confirm textinput.Model
	focus   int
}

func newProfileModel(gw Gateway, keys keyMap) profileModel {
	m := profileModel{gw: gw, keys: keys, loading: true}
	m.email = textinput.New()
	m.email.Prompt = ""
	m.mobile = textinput.New()
	m.mobile.Prompt = ""
	for _, in := range []*textinput.Model{&m.current, &m.updated, &m.confirm} {
		*in = textinput.New()
		in.Prompt = ""
		in.EchoMode = textinput.EchoPassword
	}
	return m
}

func (m profileModel) load() tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		p, err := gw.Profile(context.Background())
		if err != nil {
			return profileErrMsg{err: err}
		}
		return profileLoadedMsg{payload: p}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.payload = msg.payload
		m.errMsg = ""
		return m, nil
	case profileErrMsg:
		m.loading = false
		slog.Error("profile load failed", "error", msg.err)
		m.errMsg = "Could not load your profile."
		return m, nil
	case profileSavedMsg:
		m.mode = profileViewing
		m.notice = msg.message
		if m.notice == "" {
			m.notice = "Profile updated."
		}
		m.loading = true
		return m, m.load()
	case profileSaveErrMsg:
		// The server's text names the actual problem (duplicate mobile,
		// malformed email); show it verbatim.
		m.errMsg = msg.err.Error()
		return m, nil
	case passwordErrMsg:
		m.errMsg = msg.err.Error()
		return m, nil
	case passwordChangedMsg:
		m.mode = profileViewing
		m.notice = msg.message
		if m.notice == "" {
			m.notice = "Password updated."
		}
		m.current.SetValue("")
		m.updated.SetValue("")
		m.confirm.SetValue("")
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateInputs(msg)
}

// updateInputs delivers component messages to the input the current mode
// has focused.
func (m profileModel) updateInputs(msg tea.Msg) (profileModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case profileEditing:
		if m.focus == 0 {
			m.email, cmd = m.email.Update(msg)
		} else {
			m.mobile, cmd = m.mobile.Update(msg)
		}
	case profileResetting:
		switch m.focus {
		case 0:
			m.current, cmd = m.current.Update(msg)
		case 1:
			m.updated, cmd = m.updated.Update(msg)
		case 2:
			m.confirm, cmd = m.confirm.Update(msg)
		}
	}
	return m, cmd
}

func (m profileModel) handleKey(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch m.mode {
	case profileViewing:
		switch {
		case key.Matches(msg, m.keys.Edit):
			m.mode = profileEditing
			m.notice = ""
			m.email.SetValue(view.String(m.payload, view.FieldEmail))
			m.mobile.SetValue(view.String(m.payload, view.FieldMobile))
			m.focus = 0
			m.email.Focus()
			m.mobile.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.mode = profileResetting
			m.notice = ""
			m.focus = 0
			m.current.Focus()
			m.updated.Blur()
			m.confirm.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}
		return m, nil

	case profileEditing:
		switch msg.String() {
		case "esc":
			m.mode = profileViewing
			return m, nil
		case "tab", "shift+tab", "enter":
			if msg.String() == "enter" && m.focus == 1 {
				return m.saveProfile()
			}
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.email.Focus()
				m.mobile.Blur()
			} else {
				m.mobile.Focus()
				m.email.Blur()
			}
			return m, nil
		case "ctrl+s":
			return m.saveProfile()
		}
		return m.updateInputs(msg)

	case profileResetting:
		switch msg.String() {
		case "esc":
			m.mode = profileViewing
			return m, nil
		case "tab", "enter":
			if msg.String() == "enter" && m.focus == 2 {
				return m.changePassword()
			}
			m.focus = (m.focus + 1) % 3
			m.syncResetFocus()
			return m, nil
		case "shift+tab":
			m.focus = (m.focus + 2) % 3
			m.syncResetFocus()
			return m, nil
		case "ctrl+s":
			return m.changePassword()
		}
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m *profileModel) syncResetFocus() {
	inputs := []*textinput.Model{&m.current, &m.updated, &m.confirm}
	for i, in := range inputs {
		if i == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m profileModel) saveProfile() (profileModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	mobile := strings.TrimSpace(m.mobile.Value())
	if email == "" || mobile == "" {
		m.errMsg = "Email and mobile are required."
		return m, nil
	}
	m.errMsg = ""
	gw := m.gw
	return m, func() tea.Msg {
		text, err := gw.UpdateProfile(context.Background(), email, mobile)
		if err != nil {
			return profileSaveErrMsg{err: err}
		}
		return profileSavedMsg{message: text}
	}
}

func (m profileModel) changePassword() (profileModel, tea.Cmd) {
	current := m.current.Value()
	updated := m.updated.Value()
	confirm := m.confirm.Value()
	if current == "" || updated == "" || confirm == "" {
		m.errMsg = "All fields are required."
		return m, nil
	}
	if updated != confirm {
		m.errMsg = "New password and confirm password do not match."
		return m, nil
	}
	m.errMsg = ""
	gw := m.gw
	return m, func() tea.Msg {
		text, err := gw.UpdatePassword(context.Background(), current, updated, confirm)
		if err != nil {
			return passwordErrMsg{err: err}
		}
		return passwordChangedMsg{message: text}
	}
}

func (m profileModel) View(width int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Profile"))

	switch {
	case m.loading:
		rows = append(rows, subtitleStyle.Render("Loading profile..."))
	case m.mode == profileEditing:
		rows = append(rows,
			labelStyle.Render("Email")+"\n"+m.email.View(),
			labelStyle.Render("Mobile")+"\n"+m.mobile.View(),
			helpDescStyle.Render("ctrl+s save · esc cancel"))
	case m.mode == profileResetting:
		rows = append(rows,
			labelStyle.Render("Current Password")+"\n"+m.current.View(),
			labelStyle.Render("New Password")+"\n"+m.updated.View(),
			labelStyle.Render("Confirm Password")+"\n"+m.confirm.View(),
			helpDescStyle.Render("ctrl+s change password · esc cancel"))
	default:
		for _, f := range []struct {
			label string
			field view.Field
		}{
			{"Full Name", view.FieldFullName},
			{"Username", view.FieldUsername},
			{"Email", view.FieldEmail},
			{"Mobile", view.FieldMobile},
		} {
			rows = append(rows,
				labelStyle.Render(padLabel(f.label))+" "+view.String(m.payload, f.field))
		}
		rows = append(rows, helpDescStyle.Render("e edit · p reset password · r reload"))
	}

	if m.errMsg != "" {
		rows = append(rows, errorStyle.Render(m.errMsg))
	}
	if m.notice != "" {
		rows = append(rows, noticeStyle.Render(m.notice))
	}
	return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
