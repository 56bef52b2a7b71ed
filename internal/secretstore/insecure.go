// Package secretstore keeps item secrets on the client machine.
//
// NOT A SECURITY BOUNDARY: values are stored in plaintext and are not tied to
// purchase state. Anyone with access to the file can read every secret.
package secretstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// InsecureStore maps item ids to plaintext secrets.
type InsecureStore interface {
	PutInsecure(itemID uint64, secret string) error
	GetInsecure(itemID uint64) (secret string, ok bool, err error)
}

// InsecureFile is an InsecureStore persisted as a JSON object in one file.
type InsecureFile struct {
	mu   sync.Mutex
	path string
}

var _ InsecureStore = (*InsecureFile)(nil)

// NewInsecureFile returns a store backed by path. The file is created on first write.
func NewInsecureFile(path string) *InsecureFile {
	return &InsecureFile{path: path}
}

func (s *InsecureFile) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	m := map[string]string{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("secret store %s: %w", s.path, err)
	}
	return m, nil
}

// PutInsecure stores secret under itemID, replacing any previous value.
func (s *InsecureFile) PutInsecure(itemID uint64, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	m[strconv.FormatUint(itemID, 10)] = secret
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// GetInsecure returns the secret stored for itemID.
func (s *InsecureFile) GetInsecure(itemID uint64) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[strconv.FormatUint(itemID, 10)]
	return v, ok, nil
}
