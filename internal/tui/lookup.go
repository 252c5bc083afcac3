package tui

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// lookupModel is the public track-complaint surface: a number input, the
// lookup result, and the locally cached complaint list beneath it. The
// local list is loaded once per program run; freshly submitted complaints
// only ever reappear through the lookup API.
type lookupModel struct {
	gw    Gateway
	cache Cache

	input     textinput.Model
	result    view.Payload
	errMsg    string
	lookingUp bool

	local  []view.Payload
	cursor int
}

func newLookupModel(gw Gateway, cache Cache) lookupModel {
	in := textinput.New()
	in.Placeholder = "Enter complaint number"
	in.Prompt = ""
	in.CharLimit = 64
	m := lookupModel{gw: gw, cache: cache, input: in}
	if cache != nil {
		m.local = cache.Complaints()
		// Newest first. ISO-8601 strings order lexicographically.
		sort.SliceStable(m.local, func(i, j int) bool {
			a, _ := view.Resolve(m.local[i], view.FieldDate)
			b, _ := view.Resolve(m.local[j], view.FieldDate)
			return view.Stringify(a) > view.Stringify(b)
		})
	}
	return m
}

// setFocused gives the number input the keyboard. The input is created
// blurred; the registration form owns the keyboard until the user switches
// panels.
func (m *lookupModel) setFocused(focused bool) {
	if focused {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m lookupModel) Update(msg tea.Msg) (lookupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupDoneMsg:
		m.lookingUp = false
		m.result = msg.payload
		return m, nil
	case lookupErrMsg:
		m.lookingUp = false
		slog.Error("complaint lookup failed", "error", msg.err)
		m.errMsg = "Could not fetch complaint. Please verify the number."
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.lookup()
		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.cursor < len(m.local)-1 {
				m.cursor++
			}
			return m, nil
		case "ctrl+x":
			return m.closeSelected()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lookupModel) lookup() (lookupModel, tea.Cmd) {
	number := strings.TrimSpace(m.input.Value())
	if number == "" {
		m.errMsg = "Enter a complaint number."
		m.result = nil
		return m, nil
	}
	m.errMsg = ""
	m.result = nil
	m.lookingUp = true
	gw := m.gw
	return m, func() tea.Msg {
		p, err := gw.Complaint(context.Background(), number, false)
		if err != nil {
			return lookupErrMsg{err: err}
		}
		return lookupDoneMsg{payload: p}
	}
}

// closeSelected forgets the local copy of the selected cached complaint.
// The backend is not told; the record lives on remotely.
func (m lookupModel) closeSelected() (lookupModel, tea.Cmd) {
	if m.cursor >= len(m.local) {
		return m, nil
	}
	id := view.String(m.local[m.cursor], view.FieldNumber)
	m.local = append(m.local[:m.cursor:m.cursor], m.local[m.cursor+1:]...)
	if m.cursor >= len(m.local) && m.cursor > 0 {
		m.cursor--
	}
	if m.result != nil && view.String(m.result, view.FieldNumber) == id {
		m.result = nil
	}
	cache := m.cache
	if cache != nil && id != view.Placeholder {
		if err := cache.RemoveComplaint(id); err != nil {
			slog.Error("removing cached complaint failed", "error", err)
		}
	}
	return m, nil
}

func (m lookupModel) View(width int, focused bool) string {
	var sections []string
	sections = append(sections,
		titleStyle.Render("Track Complaints"),
		labelStyle.Render("Enter your Complaint Number:"),
		m.input.View(),
	)
	if m.lookingUp {
		sections = append(sections, subtitleStyle.Render("Looking up..."))
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}

	// The column set is re-derived on every render from everything visible:
	// the lookup result and the local rows together decide whether the
	// manager block appears.
	rows := make([]view.Record, 0, len(m.local))
	for _, p := range m.local {
		rows = append(rows, view.Normalize(p))
	}
	var lookupRec *view.Record
	if m.result != nil {
		rec := view.Normalize(m.result)
		lookupRec = &rec
	}
	showManager := view.HasNonPending(rows, lookupRec)
	columns := view.Columns(showManager)

	if lookupRec != nil {
		sections = append(sections,
			renderTable(columns, [][]string{recordCells(*lookupRec, showManager)}, -1))
	}
	if len(rows) > 0 {
		cells := make([][]string, len(rows))
		for i, r := range rows {
			cells[i] = recordCells(r, showManager)
		}
		sections = append(sections,
			subtitleStyle.Render("Your complaints (local copies)"),
			renderTable(columns, cells, m.cursor),
			helpDescStyle.Render("ctrl+j/ctrl+k select · ctrl+x forget local copy"))
	}

	style := panelStyle
	if focused {
		style = panelFocusedStyle
	}
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
