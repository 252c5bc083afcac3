package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// publicModel is the signed-out surface: the registration form and the
// track-complaints panel side by side. ctrl+t moves focus between them so
// tab stays free for field cycling inside the form.
type publicModel struct {
	form   formModel
	lookup lookupModel
	// focus: 0 form, 1 lookup.
	focus int
}

func newPublicModel(gw Gateway, cache Cache) publicModel {
	return publicModel{
		form:   newFormModel(gw, cache),
		lookup: newLookupModel(gw, cache),
	}
}

func (m publicModel) Update(msg tea.Msg) (publicModel, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg, submitErrMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case lookupDoneMsg, lookupErrMsg:
		var cmd tea.Cmd
		m.lookup, cmd = m.lookup.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+t" {
			m.focus = 1 - m.focus
			m.lookup.setFocused(m.focus == 1)
			return m, nil
		}
	}
	// Everything else, keys and component messages alike, goes to the
	// focused panel.
	var cmd tea.Cmd
	if m.focus == 0 {
		m.form, cmd = m.form.Update(msg)
	} else {
		m.lookup, cmd = m.lookup.Update(msg)
	}
	return m, cmd
}

func (m publicModel) View(width int) string {
	half := width/2 - 2
	if half < 40 {
		// Narrow terminals stack the panels instead.
		return lipgloss.JoinVertical(lipgloss.Left,
			m.form.View(width-2, m.focus == 0),
			m.lookup.View(width-2, m.focus == 1),
			helpDescStyle.Render("ctrl+t switch panel · ctrl+l admin login · ctrl+c quit"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.form.View(half, m.focus == 0),
			m.lookup.View(half, m.focus == 1)),
		helpDescStyle.Render("ctrl+t switch panel · ctrl+l admin login · ctrl+c quit"))
}
