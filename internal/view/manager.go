package view

// Manager is the canonical form of one roster entry. The roster endpoint is
// as loosely spelled as the complaint one, so the same probing applies.
type Manager struct {
	Name     string
	Email    string
	Mobile   string
	Username string
}

var managerNameKeys = []string{"fullName", "name", "managerName", "fullname", "managerFullName", "manager_fullName"}
var managerUsernameKeys = []string{"username", "managerUsername", "userName", "manager_userName", "id"}

// NormalizeManager resolves a raw roster entry. Username falls back to any
// id-like key so the assign call always has something to send.
func NormalizeManager(p Payload) Manager {
	m := Manager{
		Email:  firstOf(p, "email", "managerEmail"),
		Mobile: firstOf(p, "mobile", "managerMobile"),
	}
	m.Name = firstOf(p, managerNameKeys...)
	if m.Name == "" {
		first, _ := p["firstName"].(string)
		last, _ := p["lastName"].(string)
		if first != "" && last != "" {
			m.Name = first + " " + last
		}
	}
	m.Username = firstOf(p, managerUsernameKeys...)
	if m.Name == "" {
		m.Name = m.Username
	}
	return m
}

func firstOf(p Payload, keys ...string) string {
	for _, key := range keys {
		if v, ok := p[key]; ok && v != nil {
			if s := Stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}
