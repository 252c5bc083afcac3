package view

import (
	"regexp"
	"strings"
	"time"
)

// Record is the canonical display form of one complaint.
type Record struct {
	Number   string
	Reporter string
	Email    string
	Mobile   string
	Address  string
	Text     string
	// Status keeps the server's casing for display; comparisons go through
	// StatusUpper so "In_Process" and "IN_PROCESS" behave the same.
	Status        string
	Date          string
	ManagerName   string
	ManagerEmail  string
	ManagerMobile string
	Response      string
}

const (
	StatusPending   = "PENDING"
	StatusInProcess = "IN_PROCESS"
	StatusClosed    = "CLOSED"
)

// Normalize resolves a raw payload into a Record. Missing fields come out
// as the placeholder; an absent status defaults to PENDING.
func Normalize(p Payload) Record {
	r := Record{
		Number:        String(p, FieldNumber),
		Reporter:      String(p, FieldReporter),
		Email:         String(p, FieldEmail),
		Mobile:        String(p, FieldMobile),
		Address:       String(p, FieldAddress),
		Text:          String(p, FieldText),
		Status:        StatusOf(p),
		ManagerName:   managerNameOf(p),
		ManagerEmail:  String(p, FieldManagerEmail),
		ManagerMobile: String(p, FieldManagerMobile),
		Response:      String(p, FieldResponse),
	}
	if v, ok := Resolve(p, FieldDate); ok {
		r.Date = FormatDate(v)
	} else {
		r.Date = Placeholder
	}
	return r
}

// StatusOf resolves the status field, trimmed, defaulting to PENDING.
func StatusOf(p Payload) string {
	v, ok := Resolve(p, FieldStatus)
	if !ok {
		return StatusPending
	}
	s := strings.TrimSpace(Stringify(v))
	if s == "" {
		return StatusPending
	}
	return s
}

// StatusUpper is the comparison form of a status value.
func StatusUpper(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

func managerNameOf(p Payload) string {
	if v, ok := Resolve(p, FieldManagerName); ok {
		if s := Stringify(v); s != "" {
			return s
		}
	}
	// Some payloads split the name across two keys.
	first, _ := p["managerFirstName"].(string)
	last, _ := p["managerLastName"].(string)
	if first != "" && last != "" {
		return first + " " + last
	}
	return Placeholder
}

var plainDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayouts are tried in order for anything that is not a plain date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDate renders a creation date for display. A bare YYYY-MM-DD string
// is returned verbatim: parsing it through a time zone would shift the day.
// Parseable date-times become a local timestamp; anything else falls back
// to the raw value or the placeholder.
func FormatDate(v any) string {
	switch t := v.(type) {
	case nil:
		return Placeholder
	case string:
		if t == "" {
			return Placeholder
		}
		if plainDate.MatchString(t) {
			return t
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.Local().Format("Jan 2, 2006 15:04")
			}
		}
		return t
	case float64:
		// Epoch milliseconds, the other format this backend has been seen
		// emitting for createdAt.
		return time.UnixMilli(int64(t)).Local().Format("Jan 2, 2006 15:04")
	default:
		return Display(Stringify(v))
	}
}

// ManagerCell blanks manager identity for pending rows; otherwise it shows
// the value (placeholder included).
func ManagerCell(status, value string) string {
	if StatusUpper(status) == StatusPending {
		return ""
	}
	return Display(value)
}

// ResponseCell blanks the response for pending and in-process rows.
func ResponseCell(status, value string) string {
	switch StatusUpper(status) {
	case StatusPending, StatusInProcess:
		return ""
	}
	return Display(value)
}

// HasNonPending reports whether any visible record, the standalone lookup
// result included, carries a non-pending status. Callers re-derive this on
// every render: newly loaded data can flip the answer.
func HasNonPending(rows []Record, lookup *Record) bool {
	for _, r := range rows {
		if StatusUpper(r.Status) != StatusPending {
			return true
		}
	}
	return lookup != nil && StatusUpper(lookup.Status) != StatusPending
}

// BaseColumns are always shown; manager and response columns are appended
// only when HasNonPending holds for the current render.
var BaseColumns = []string{"Complain No.", "Reporter", "Contact", "Address", "Complain", "Date", "Status"}

var managerColumns = []string{"Manager", "Manager Email", "Manager Mobile", "Response"}

// Columns returns the table header for the current render.
func Columns(showManager bool) []string {
	cols := append([]string(nil), BaseColumns...)
	if showManager {
		cols = append(cols, managerColumns...)
	}
	return cols
}
