package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek2312Singh/complain-management-system/internal/api"
	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

const (
	formFieldName = iota
	formFieldMobile
	formFieldEmail
	formFieldAddress
	formFieldComplain
	formFieldCount
)

// formModel is the complaint registration form. On success it shows a
// blocking acknowledgement with the server-issued number; the new complaint
// is cached locally but never appended to a rendered list.
type formModel struct {
	gw     Gateway
	cache  Cache
	inputs []textinput.Model
	body   textarea.Model
	focus  int
	errMsg string
	// ack holds the acknowledgement text; while non-empty the form is
	// replaced by the ack and any key dismisses it.
	ack        string
	submitting bool
}

func newFormModel(gw Gateway, cache Cache) formModel {
	m := formModel{gw: gw, cache: cache}
	labels := []string{"Jane Doe", "9876543210", "jane@example.com", "123 Main St, City"}
	for _, placeholder := range labels {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = ""
		in.CharLimit = 120
		m.inputs = append(m.inputs, in)
	}
	m.body = textarea.New()
	m.body.Placeholder = "Describe the issue..."
	m.body.SetHeight(4)
	m.inputs[formFieldName].Focus()
	return m
}

func (m *formModel) setFocus(i int) {
	m.focus = i
	for idx := range m.inputs {
		if idx == i {
			m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
	if i == formFieldComplain {
		m.body.Focus()
	} else {
		m.body.Blur()
	}
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.submitting = false
		m.ack = "Complain submitted. This is your complain number: " + msg.number +
			"\nSave it to track your complain."
		m.reset()
		return m, nil
	case submitErrMsg:
		m.submitting = false
		slog.Error("complaint submission failed", "error", msg.err)
		m.errMsg = "Failed to submit complaint. Please try again."
		return m, nil
	case tea.KeyMsg:
		if m.ack != "" {
			// Blocking acknowledgement: any key dismisses it.
			m.ack = ""
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			if m.focus == formFieldComplain && msg.String() == "down" {
				break
			}
			m.setFocus((m.focus + 1) % formFieldCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + formFieldCount - 1) % formFieldCount)
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus != formFieldComplain {
				m.setFocus((m.focus + 1) % formFieldCount)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == formFieldComplain {
		m.body, cmd = m.body.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m formModel) submit() (formModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	name := strings.TrimSpace(m.inputs[formFieldName].Value())
	mobile := strings.TrimSpace(m.inputs[formFieldMobile].Value())
	email := strings.TrimSpace(m.inputs[formFieldEmail].Value())
	address := strings.TrimSpace(m.inputs[formFieldAddress].Value())
	complain := strings.TrimSpace(m.body.Value())

	if name == "" || mobile == "" || email == "" || address == "" || complain == "" {
		m.errMsg = "All fields are required."
		return m, nil
	}
	mobileNum, err := strconv.ParseInt(mobile, 10, 64)
	if err != nil {
		m.errMsg = "Mobile must be a number."
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	in := api.ComplaintInput{
		Username: name,
		Mobile:   mobileNum,
		Email:    email,
		Address:  address,
		Complain: complain,
	}
	gw, cache := m.gw, m.cache
	return m, func() tea.Msg {
		resp, err := gw.SubmitComplaint(context.Background(), in)
		if err != nil {
			return submitErrMsg{err: err}
		}
		number, ok := view.ExtractComplaintNumber(resp)
		if !ok {
			number = view.NewLocalID()
		}
		entry := view.Payload{
			"id":              number,
			"complaintNumber": number,
			"username":        in.Username,
			"mobile":          in.Mobile,
			"email":           in.Email,
			"address":         in.Address,
			"complain":        in.Complain,
			"status":          "Open",
			"createdAt":       time.Now().Format(time.RFC3339),
		}
		if body, ok := resp.(map[string]any); ok {
			for k, v := range body {
				if v != nil {
					entry[k] = v
				}
			}
		}
		if cache != nil {
			if err := cache.AddComplaint(entry); err != nil {
				slog.Error("caching submitted complaint failed", "error", err)
			}
		}
		return submitDoneMsg{number: number, entry: entry}
	}
}

func (m *formModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.body.SetValue("")
	m.setFocus(formFieldName)
}

func (m formModel) View(width int, focused bool) string {
	if m.ack != "" {
		return ackStyle.Render(m.ack)
	}

	labels := []string{"Full Name", "Mobile", "Email", "Address", "Complain"}
	var rows []string
	for i, in := range m.inputs {
		rows = append(rows, labelStyle.Render(labels[i])+"\n"+in.View())
	}
	rows = append(rows, labelStyle.Render(labels[formFieldComplain])+"\n"+m.body.View())
	if m.errMsg != "" {
		rows = append(rows, errorStyle.Render(m.errMsg))
	}
	hint := "ctrl+s submit"
	if m.submitting {
		hint = "Submitting..."
	}
	rows = append(rows, helpDescStyle.Render(hint))

	body := titleStyle.Render("Complaint Registration Form") + "\n" +
		lipgloss.JoinVertical(lipgloss.Left, rows...)
	style := panelStyle
	if focused {
		style = panelFocusedStyle
	}
	return style.Width(width).Render(body)
}
