package tui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek2312Singh/complain-management-system/internal/config"
	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// panelState is the per-panel lifecycle. Panels are independent: each owns
// its list, rows, filter and error, and never shares them across buckets.
type panelState int

const (
	panelIdle panelState = iota
	panelLoadingList
	panelLoadingDetails
	panelReady
	panelError
)

// noticeTTL is how long a transient confirmation stays on screen.
const noticeTTL = 3 * time.Second

// panelModel drives one status bucket (PENDING, IN_PROCESS or CLOSED).
// The pending panel additionally carries the manager roster and per-row
// manager selections for assignment.
type panelModel struct {
	bucket string
	gw     Gateway
	policy string
	keys   keyMap

	state   panelState
	numbers []string
	rows    []view.Payload
	errMsg  string

	filter    textinput.Model
	filtering bool
	cursor    int

	// opened is the single shared detail slot; opening another complaint
	// replaces it.
	opened  view.Payload
	openErr string

	// Pending-panel assignment state.
	assignable bool
	managers   []view.Manager
	selections map[string]string
	picker     *pickerModel
	assigning  bool

	notice   string
	noticeID int
}

func newPanelModel(gw Gateway, bucket, policy string, keys keyMap) panelModel {
	in := textinput.New()
	in.Placeholder = "Search by complain number..."
	in.Prompt = "/ "
	return panelModel{
		bucket:     bucket,
		gw:         gw,
		policy:     policy,
		keys:       keys,
		filter:     in,
		assignable: bucket == view.StatusPending,
		selections: map[string]string{},
	}
}

// refresh (re)starts the fetch sequence. Outstanding responses from an
// earlier refresh are not cancelled; last write wins.
func (m panelModel) refresh() (panelModel, tea.Cmd) {
	m.state = panelLoadingList
	m.errMsg = ""
	gw, bucket := m.gw, m.bucket
	return m, func() tea.Msg {
		numbers, err := gw.ComplaintNumbers(context.Background(), bucket)
		if err != nil {
			return numbersErrMsg{bucket: bucket, err: err}
		}
		return numbersLoadedMsg{bucket: bucket, numbers: numbers}
	}
}

// fetchDetails fans out one detail fetch per identifier with no concurrency
// cap. Results are collected positionally so display order follows the list
// order, not arrival order. Under the best-effort policy failed items are
// dropped silently; all-or-nothing fails the batch instead.
func fetchDetails(gw Gateway, bucket string, numbers []string, policy string) tea.Cmd {
	return func() tea.Msg {
		rows := make([]view.Payload, len(numbers))
		errs := make([]error, len(numbers))
		var wg sync.WaitGroup
		for i, number := range numbers {
			wg.Add(1)
			go func(i int, number string) {
				defer wg.Done()
				rows[i], errs[i] = gw.Complaint(context.Background(), number, true)
			}(i, number)
		}
		wg.Wait()

		if policy == config.PolicyAllOrNothing {
			for _, err := range errs {
				if err != nil {
					return detailsErrMsg{bucket: bucket, err: err}
				}
			}
		}
		kept := make([]view.Payload, 0, len(numbers))
		for i := range rows {
			if errs[i] == nil && rows[i] != nil {
				kept = append(kept, rows[i])
			}
		}
		return detailsLoadedMsg{bucket: bucket, rows: kept}
	}
}

func (m panelModel) fetchRoster() tea.Cmd {
	gw, bucket := m.gw, m.bucket
	return func() tea.Msg {
		payloads, err := gw.Managers(context.Background())
		if err != nil {
			// The roster is a secondary concern; an empty roster just
			// keeps the assign action disabled.
			return panelRosterMsg{bucket: bucket}
		}
		managers := make([]view.Manager, 0, len(payloads))
		for _, p := range payloads {
			managers = append(managers, view.NormalizeManager(p))
		}
		return panelRosterMsg{bucket: bucket, managers: managers}
	}
}

func (m panelModel) Update(msg tea.Msg) (panelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case numbersLoadedMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.numbers = msg.numbers
		m.state = panelLoadingDetails
		m.cursor = 0
		cmds := []tea.Cmd{fetchDetails(m.gw, m.bucket, m.numbers, m.policy)}
		if m.assignable && len(m.numbers) > 0 {
			cmds = append(cmds, m.fetchRoster())
		}
		return m, tea.Batch(cmds...)

	case numbersErrMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.state = panelError
		m.errMsg = msg.err.Error()
		return m, nil

	case detailsLoadedMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.rows = msg.rows
		m.state = panelReady
		return m, nil

	case detailsErrMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.state = panelError
		m.errMsg = msg.err.Error()
		return m, nil

	case panelRosterMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.managers = msg.managers
		return m, nil

	case detailOpenedMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.opened = msg.payload
		m.openErr = ""
		return m, nil

	case detailErrMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.openErr = msg.err.Error()
		return m, nil

	case managerPickedMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.selections[msg.number] = msg.username
		m.picker = nil
		return m, nil

	case assignDoneMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.assigning = false
		text := msg.message
		if text == "" {
			text = "Complain updated successfully."
		}
		return m.showNotice(text)

	case assignErrMsg:
		if msg.bucket != m.bucket {
			return m, nil
		}
		m.assigning = false
		return m.showNotice(msg.err.Error())

	case noticeExpiredMsg:
		if msg.bucket == m.bucket && msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.picker != nil {
		picker, cmd := m.picker.Update(msg)
		m.picker = &picker
		return m, cmd
	}
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m panelModel) handleKey(msg tea.KeyMsg) (panelModel, tea.Cmd) {
	if m.picker != nil {
		if msg.String() == "esc" {
			m.picker = nil
			return m, nil
		}
		picker, cmd := m.picker.Update(msg)
		m.picker = &picker
		return m, cmd
	}

	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		if m.opened != nil || m.openErr != "" {
			m.opened = nil
			m.openErr = ""
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, nil
	case key.Matches(msg, m.keys.NavUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.NavDown):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Select):
		return m.openSelected()
	case key.Matches(msg, m.keys.Assign) && m.assignable:
		return m.openPicker()
	case key.Matches(msg, m.keys.Submit) && m.assignable:
		return m.assignSelected()
	}
	return m, nil
}

// visible applies the substring filter over identifiers.
func (m panelModel) visible() []view.Payload {
	term := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if term == "" {
		return m.rows
	}
	var out []view.Payload
	for _, p := range m.rows {
		number := strings.ToLower(view.String(p, view.FieldNumber))
		if strings.Contains(number, term) {
			out = append(out, p)
		}
	}
	return out
}

func (m panelModel) selectedNumber() string {
	rows := m.visible()
	if m.cursor >= len(rows) {
		return ""
	}
	return view.String(rows[m.cursor], view.FieldNumber)
}

func (m panelModel) openSelected() (panelModel, tea.Cmd) {
	number := m.selectedNumber()
	if number == "" || number == view.Placeholder {
		return m, nil
	}
	gw, bucket := m.gw, m.bucket
	return m, func() tea.Msg {
		p, err := gw.Complaint(context.Background(), number, true)
		if err != nil {
			return detailErrMsg{bucket: bucket, err: err}
		}
		return detailOpenedMsg{bucket: bucket, payload: p}
	}
}

func (m panelModel) openPicker() (panelModel, tea.Cmd) {
	number := m.selectedNumber()
	if number == "" || number == view.Placeholder {
		return m, nil
	}
	if len(m.managers) == 0 {
		return m.showNotice("Manager roster not loaded yet.")
	}
	picker := newPickerModel(m.managers, m.bucket, number)
	m.picker = &picker
	return m, nil
}

// assignSelected submits the assignment. It stays disabled until both a
// roster and a per-row selection exist. Success shows a transient
// confirmation and deliberately does not re-run the list fetch: the
// assigned complaint stays visible until a manual refresh.
func (m panelModel) assignSelected() (panelModel, tea.Cmd) {
	if m.assigning {
		return m, nil
	}
	number := m.selectedNumber()
	if number == "" || number == view.Placeholder {
		return m, nil
	}
	if len(m.managers) == 0 {
		return m.showNotice("Manager roster not loaded yet.")
	}
	username := m.selections[number]
	if username == "" {
		return m.showNotice("Please select a manager first.")
	}
	m.assigning = true
	gw, bucket := m.gw, m.bucket
	return m, func() tea.Msg {
		text, err := gw.AssignManager(context.Background(), number, username)
		if err != nil {
			return assignErrMsg{bucket: bucket, err: err}
		}
		return assignDoneMsg{bucket: bucket, message: text}
	}
}

func (m panelModel) showNotice(text string) (panelModel, tea.Cmd) {
	m.notice = text
	m.noticeID++
	bucket, id := m.bucket, m.noticeID
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{bucket: bucket, id: id}
	})
}

func (m panelModel) View(width int) string {
	var sections []string

	switch m.state {
	case panelIdle, panelLoadingList:
		sections = append(sections, subtitleStyle.Render("Loading complaints..."))
	case panelLoadingDetails:
		sections = append(sections, subtitleStyle.Render("Loading details..."))
	case panelError:
		sections = append(sections, errorStyle.Render(m.errMsg))
	case panelReady:
		sections = append(sections, m.renderTableSection()...)
	}

	if m.notice != "" {
		style := noticeStyle
		if !strings.Contains(strings.ToLower(m.notice), "success") {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.notice))
	}
	if m.filtering || m.filter.Value() != "" {
		sections = append([]string{m.filter.View()}, sections...)
	}
	if m.openErr != "" {
		sections = append(sections, errorStyle.Render(m.openErr))
	}
	if m.opened != nil {
		sections = append(sections, renderDetail(m.opened, width-4))
	}
	if m.picker != nil {
		sections = append(sections, m.picker.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m panelModel) renderTableSection() []string {
	rows := m.visible()
	if len(rows) == 0 {
		if m.filter.Value() != "" {
			return []string{subtitleStyle.Render("No complaints found matching your search.")}
		}
		return []string{subtitleStyle.Render("No complaints found.")}
	}

	records := make([]view.Record, len(rows))
	for i, p := range rows {
		records[i] = view.Normalize(p)
	}
	showManager := view.HasNonPending(records, nil)
	columns := view.Columns(showManager)
	if m.assignable {
		columns = append(columns, "Assigned To")
	}

	cells := make([][]string, len(records))
	for i, r := range records {
		cells[i] = recordCells(r, showManager)
		if m.assignable {
			choice := m.selections[r.Number]
			if choice == "" {
				choice = "Select Manager"
			}
			cells[i] = append(cells[i], choice)
		}
	}
	return []string{renderTable(columns, cells, m.cursor)}
}
