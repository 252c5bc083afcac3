package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// pickerModel is the manager chooser overlay on the pending panel: type to
// fuzzy-filter the roster, enter picks the highlighted manager for the row
// the picker was opened on.
type pickerModel struct {
	managers []view.Manager
	filter   textinput.Model
	matches  []int
	cursor   int
	// bucket and number identify the panel row the pick applies to.
	bucket string
	number string
}

type managerPickedMsg struct {
	bucket   string
	number   string
	username string
}

func newPickerModel(managers []view.Manager, bucket, number string) pickerModel {
	in := textinput.New()
	in.Placeholder = "Type to filter managers"
	in.Prompt = "/ "
	in.Focus()
	p := pickerModel{managers: managers, filter: in, bucket: bucket, number: number}
	p.refilter()
	return p
}

func (p *pickerModel) refilter() {
	query := strings.TrimSpace(p.filter.Value())
	if query == "" {
		p.matches = p.matches[:0]
		for i := range p.managers {
			p.matches = append(p.matches, i)
		}
	} else {
		names := make([]string, len(p.managers))
		for i, m := range p.managers {
			names[i] = m.Name + " " + m.Username
		}
		p.matches = p.matches[:0]
		for _, match := range fuzzy.Find(query, names) {
			p.matches = append(p.matches, match.Index)
		}
	}
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
}

func (p pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "ctrl+k":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down", "ctrl+j":
			if p.cursor < len(p.matches)-1 {
				p.cursor++
			}
			return p, nil
		case "enter":
			if p.cursor < len(p.matches) {
				m := p.managers[p.matches[p.cursor]]
				bucket, number, username := p.bucket, p.number, m.Username
				return p, func() tea.Msg {
					return managerPickedMsg{bucket: bucket, number: number, username: username}
				}
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.refilter()
	return p, cmd
}

func (p pickerModel) View() string {
	var rows []string
	rows = append(rows,
		titleStyle.Render("Assign Manager for "+p.number),
		p.filter.View(),
	)
	if len(p.matches) == 0 {
		rows = append(rows, subtitleStyle.Render("No managers match."))
	}
	for i, idx := range p.matches {
		m := p.managers[idx]
		line := m.Name
		if m.Username != "" && m.Username != m.Name {
			line += "  " + labelStyle.Render("("+m.Username+")")
		}
		if i == p.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = cellStyle.Render("  " + line)
		}
		rows = append(rows, line)
	}
	rows = append(rows, helpDescStyle.Render("enter pick · esc cancel"))
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
