package session

import "testing"

type memStore struct {
	token string
}

func (m *memStore) Token() string              { return m.token }
func (m *memStore) SaveToken(tok string) error { m.token = tok; return nil }
func (m *memStore) ClearToken() error          { m.token = ""; return nil }

func TestNewLoadsPersistedToken(t *testing.T) {
	s := New(&memStore{token: "saved"})
	if !s.Authenticated() || s.Token() != "saved" {
		t.Fatalf("expected persisted token to be loaded")
	}
}

func TestSetAndClearNotify(t *testing.T) {
	st := &memStore{}
	s := New(st)

	var states []bool
	s.OnChange(func(auth bool) { states = append(states, auth) })

	if err := s.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	if st.token != "tok" {
		t.Fatalf("token not persisted")
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if st.token != "" {
		t.Fatalf("token not cleared from store")
	}
	if len(states) != 2 || states[0] != true || states[1] != false {
		t.Fatalf("unexpected change notifications: %v", states)
	}
}

func TestNotifyReachesEverySubscriber(t *testing.T) {
	s := New(&memStore{})
	var first, second int
	s.OnChange(func(bool) { first++ })
	s.OnChange(func(bool) { second++ })
	if err := s.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	if first != 1 || second != 1 {
		t.Fatalf("expected both subscribers notified once, got %d and %d", first, second)
	}
}
