// Package config provides persisted CLI state for the Bullhorn CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/bullhorn-tools/bh-cli/internal/core/domain"
)

// Store persists the session record across CLI invocations.
type Store interface {
	// Load returns the stored session. A missing file yields an empty
	// session, not an error.
	Load() (*domain.Session, error)

	// Save writes the whole session record in one step.
	Save(*domain.Session) error

	// Clear removes the session record. Clearing an absent record is
	// not an error.
	Clear() error
}

// DefaultPath returns the default session file path.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".bh", "session.yaml")
}

// FileStore is a Store backed by a YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store. An empty path selects the
// default location.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// Path returns the session file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the session file.
func (s *FileStore) Load() (*domain.Session, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return &domain.Session{}, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load session file %s: %w", s.path, err)
	}

	var session domain.Session
	if err := k.UnmarshalWithConf("", &session, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", s.path, err)
	}

	return &session, nil
}

// Save writes the session atomically: temp file in the same directory,
// then rename. The file is user-readable only.
func (s *FileStore) Save(session *domain.Session) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yamlv3.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace session file: %w", err)
	}

	return nil
}

// Clear removes the session file.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
