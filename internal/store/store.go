// Package store persists the client's local state: the advisory cache of
// submitted complaints and the bearer token. Both live as small files under
// one state directory; neither is authoritative, the backend is.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

const (
	complaintsFile = "complaints.json"
	tokenFile      = "token"
)

// Store reads and writes local state under dir.
type Store struct {
	dir string
}

// Open ensures the state directory exists and returns a Store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Complaints loads the cached complaint list. A missing or corrupt cache
// yields an empty list, never an error: the cache is advisory.
func (s *Store) Complaints() []view.Payload {
	data, err := os.ReadFile(filepath.Join(s.dir, complaintsFile))
	if err != nil {
		return nil
	}
	var out []view.Payload
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// SaveComplaints writes the cache atomically so a crash mid-write cannot
// corrupt the previous copy.
func (s *Store) SaveComplaints(list []view.Payload) error {
	if list == nil {
		list = []view.Payload{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(s.dir, complaintsFile), data, 0o600)
}

// AddComplaint appends one entry to the cache.
func (s *Store) AddComplaint(p view.Payload) error {
	return s.SaveComplaints(append(s.Complaints(), p))
}

// RemoveComplaint forgets the local copy matching id against any of the
// identifier spellings. It never touches the backend.
func (s *Store) RemoveComplaint(id string) error {
	var kept []view.Payload
	for _, p := range s.Complaints() {
		if !matchesID(p, id) {
			kept = append(kept, p)
		}
	}
	return s.SaveComplaints(kept)
}

func matchesID(p view.Payload, id string) bool {
	for _, key := range []string{"id", "complaintNumber", "complainNumber"} {
		if v, ok := p[key]; ok && view.Stringify(v) == id {
			return true
		}
	}
	return false
}

// Token returns the stored bearer token, empty when absent.
func (s *Store) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken persists the bearer token.
func (s *Store) SaveToken(token string) error {
	return writeAtomic(filepath.Join(s.dir, tokenFile), []byte(token), 0o600)
}

// ClearToken removes the stored token. A token that was never stored is not
// an error.
func (s *Store) ClearToken() error {
	err := os.Remove(filepath.Join(s.dir, tokenFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
