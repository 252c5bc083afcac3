package tui

import (
	"sort"
	"strings"
	"unicode"

	"github.com/muesli/reflow/wordwrap"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// renderDetail shows every populated field of a raw complaint payload as a
// label/value grid, the expandable "opened complaint" panel. Response-like
// keys are always shown, even when empty, so an admin sees that no response
// has been written yet.
func renderDetail(p view.Payload, width int) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	wrapWidth := width - 24
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Complain Details"))
	b.WriteString("\n")
	for _, k := range keys {
		v := p[k]
		value := view.Stringify(v)
		if value == "" && !isResponseKey(k) {
			continue
		}
		label := displayLabel(k)
		b.WriteString(labelStyle.Render(padLabel(label)))
		b.WriteString(" ")
		if isStatusKey(k) {
			b.WriteString(statusStyle(view.StatusUpper(value)).Render(view.Display(value)))
			b.WriteString("\n")
			continue
		}
		wrapped := wordwrap.String(view.Display(value), wrapWidth)
		lines := strings.Split(wrapped, "\n")
		b.WriteString(lines[0])
		for _, line := range lines[1:] {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", 21))
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return panelStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func isStatusKey(k string) bool {
	switch strings.ToLower(k) {
	case "status", "complainstatus", "complaintstatus":
		return true
	}
	return false
}

func isResponseKey(k string) bool {
	switch strings.ToLower(k) {
	case "response", "complainresponse", "complain_response":
		return true
	}
	return false
}

// displayLabel turns a camelCase key into words, collapsing the manager
// name spellings into one label.
func displayLabel(key string) string {
	lower := strings.ToLower(key)
	if strings.Contains(lower, "manager") && (strings.Contains(lower, "name") || lower == "manager") {
		return "Manager Name"
	}
	if isResponseKey(key) {
		return "Response"
	}
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func padLabel(label string) string {
	const labelWidth = 20
	if len(label) > labelWidth-1 {
		label = label[:labelWidth-1]
	}
	return label + strings.Repeat(" ", labelWidth-1-len(label)) + ":"
}
