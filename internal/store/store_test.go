package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestComplaintsRoundTrip(t *testing.T) {
	s := openTemp(t)
	list := []view.Payload{
		{"complaintNumber": "C-1", "username": "jane", "status": "Open"},
		{"complaintNumber": "C-2", "username": "omar", "status": "PENDING"},
	}
	if err := s.SaveComplaints(list); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := s.Complaints()
	if !reflect.DeepEqual(got, list) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", got, list)
	}
}

func TestComplaintsMissingAndCorrupt(t *testing.T) {
	s := openTemp(t)
	if got := s.Complaints(); len(got) != 0 {
		t.Fatalf("missing cache must read empty, got %v", got)
	}

	path := filepath.Join(s.dir, complaintsFile)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := s.Complaints(); len(got) != 0 {
		t.Fatalf("corrupt cache must read empty, got %v", got)
	}
}

func TestRemoveComplaintMatchesAnySpelling(t *testing.T) {
	s := openTemp(t)
	err := s.SaveComplaints([]view.Payload{
		{"complainNumber": "C-1"},
		{"complaintNumber": "C-2"},
		{"id": "C-3"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveComplaint("C-2"); err != nil {
		t.Fatal(err)
	}
	got := s.Complaints()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries after remove, got %d", len(got))
	}
	for _, p := range got {
		if matchesID(p, "C-2") {
			t.Fatalf("C-2 still present: %v", p)
		}
	}
}

func TestTokenLifecycle(t *testing.T) {
	s := openTemp(t)
	if s.Token() != "" {
		t.Fatalf("fresh store must have no token")
	}
	if err := s.SaveToken("abc.def\n"); err != nil {
		t.Fatal(err)
	}
	if got := s.Token(); got != "abc.def" {
		t.Fatalf("expected trimmed token, got %q", got)
	}
	if err := s.ClearToken(); err != nil {
		t.Fatal(err)
	}
	if s.Token() != "" {
		t.Fatalf("token survived clear")
	}
	if err := s.ClearToken(); err != nil {
		t.Fatalf("double clear must not fail: %v", err)
	}
}
