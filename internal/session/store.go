package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Credentials is the durable credential bundle. The three fields are written
// and removed together; a bundle with only some fields set is treated as
// absent.
type Credentials struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Complete reports whether all three fields are present.
func (c Credentials) Complete() bool {
	return c.Token != "" && c.Username != "" && c.Role != ""
}

// Store is durable key-value storage for the credential bundle.
type Store interface {
	// Load returns the stored bundle, or ok=false when nothing usable is
	// stored. Load never fails the caller: corruption reads as absence.
	Load() (Credentials, bool)
	// Save persists the whole bundle atomically.
	Save(Credentials) error
	// Clear removes the bundle.
	Clear() error
}

const sessionFileName = "session.json"

// FileStore persists credentials as a JSON file with owner-only permissions,
// under a state directory such as ~/.clinic-portal.
type FileStore struct {
	dir string
}

// NewFileStore builds a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, sessionFileName)
}

// Load reads the stored bundle. Missing, unreadable or partial files all read
// as "nothing stored".
func (s *FileStore) Load() (Credentials, bool) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return Credentials{}, false
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false
	}
	if !creds.Complete() {
		return Credentials{}, false
	}
	return creds, true
}

// Save writes the bundle, creating the state directory if needed.
func (s *FileStore) Save(creds Credentials) error {
	if !creds.Complete() {
		return errors.New("refusing to persist a partial credential bundle")
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o600)
}

// Clear removes the session file. A missing file is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	creds Credentials
	set   bool
}

// NewMemStore builds an empty MemStore.
func NewMemStore() *MemStore { return &MemStore{} }

// Seed pre-populates the store, simulating a previous login.
func (s *MemStore) Seed(creds Credentials) {
	s.creds, s.set = creds, true
}

func (s *MemStore) Load() (Credentials, bool) {
	if !s.set || !s.creds.Complete() {
		return Credentials{}, false
	}
	return s.creds, true
}

func (s *MemStore) Save(creds Credentials) error {
	if !creds.Complete() {
		return errors.New("refusing to persist a partial credential bundle")
	}
	s.creds, s.set = creds, true
	return nil
}

func (s *MemStore) Clear() error {
	s.creds, s.set = Credentials{}, false
	return nil
}
