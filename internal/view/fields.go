// Package view reconciles the backend's loosely-typed complaint payloads
// into canonical display records. The backend has grown several spellings
// for the same field over time; every consumer resolves them through the
// single alias table below instead of probing ad hoc.
package view

import "strconv"

// Payload is one raw backend record, decoded straight from JSON.
type Payload map[string]any

// Placeholder is rendered wherever no candidate key resolved to a value.
const Placeholder = "—"

// Field names a canonical complaint attribute.
type Field string

const (
	FieldNumber        Field = "number"
	FieldReporter      Field = "reporter"
	FieldFullName      Field = "fullName"
	FieldUsername      Field = "username"
	FieldEmail         Field = "email"
	FieldMobile        Field = "mobile"
	FieldAddress       Field = "address"
	FieldText          Field = "text"
	FieldStatus        Field = "status"
	FieldDate          Field = "date"
	FieldManagerName   Field = "managerName"
	FieldManagerEmail  Field = "managerEmail"
	FieldManagerMobile Field = "managerMobile"
	FieldResponse      Field = "response"
)

// aliases maps each canonical field to its accepted backend spellings, in
// probe order. The first key present with a non-nil value wins.
var aliases = map[Field][]string{
	FieldNumber:        {"complainNumber", "complaintNumber", "complaintNo", "complainNo", "ticketNumber", "ticketNo", "number", "id"},
	FieldReporter:      {"username", "name", "reporterName"},
	FieldFullName:      {"fullName", "name", "username"},
	FieldUsername:      {"userName", "username"},
	FieldEmail:         {"email"},
	FieldMobile:        {"mobile", "mobileNumber", "contactNumber"},
	FieldAddress:       {"address"},
	FieldText:          {"complain", "complaint", "description"},
	FieldStatus:        {"status", "complainStatus", "complaintStatus"},
	FieldDate:          {"complainDate", "createdAt"},
	FieldManagerName:   {"managerName", "managerFullName", "manager_fullName", "managerUsername", "managerUserName"},
	FieldManagerEmail:  {"managerEmail"},
	FieldManagerMobile: {"managerMobile"},
	FieldResponse:      {"complainResponse", "response", "complain_response"},
}

// Resolve probes the alias list for field and returns the first value that
// is present and non-nil. The second return reports whether anything matched.
func Resolve(p Payload, field Field) (any, bool) {
	for _, key := range aliases[field] {
		if v, ok := p[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Stringify renders a resolved value the way the UI displays scalars.
// JSON numbers arrive as float64; integral ones must not grow a ".0".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Display returns the placeholder for empty values, the value otherwise.
func Display(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// String resolves field and renders it for display, placeholder included.
func String(p Payload, field Field) string {
	v, ok := Resolve(p, field)
	if !ok {
		return Placeholder
	}
	return Display(Stringify(v))
}
