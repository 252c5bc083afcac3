package view

import (
	"strings"

	"github.com/google/uuid"
)

// numberKeys are probed on the submit response, top level first, then under
// a data wrapper. Some backend builds return the bare number as a scalar.
var numberKeys = []string{"complainNumber", "complaintNumber", "complaintNo", "complainNo", "ticketNumber", "ticketNo", "number", "id"}
var nestedNumberKeys = []string{"complainNumber", "complaintNumber", "id", "number"}

// ExtractComplaintNumber pulls the server-assigned complaint number out of a
// submit response. It accepts a bare number, an identifier-looking string, a
// flat object, or an object nesting the record under "data". Confirmation
// prose does not count; returns false when nothing matched so the caller can
// fall back to a local id.
func ExtractComplaintNumber(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		if s := strings.TrimSpace(t); looksLikeNumber(s) {
			return s, true
		}
		return "", false
	case float64:
		return Stringify(t), true
	case map[string]any:
		for _, key := range numberKeys {
			if inner, ok := t[key]; ok && inner != nil {
				if s := Stringify(inner); s != "" {
					return s, true
				}
			}
		}
		if data, ok := t["data"].(map[string]any); ok {
			for _, key := range nestedNumberKeys {
				if inner, ok := data[key]; ok && inner != nil {
					if s := Stringify(inner); s != "" {
						return s, true
					}
				}
			}
		}
	}
	return "", false
}

// looksLikeNumber separates identifiers ("C-42", "1007") from confirmation
// prose ("Complain registered successfully"): a single token carrying at
// least one digit.
func looksLikeNumber(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	return strings.ContainsAny(s, "0123456789")
}

// NewLocalID generates a fallback identifier for a complaint the server
// acknowledged without returning a number. Local ids are advisory only.
func NewLocalID() string {
	return "CMP-" + uuid.NewString()[:8]
}
