package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/dnslab/backendctl/internal/domain"
)

// Record tracks which backend was bootstrapped and when each
// lifecycle step last ran. Only one backendctl invocation mutates it
// at a time, enforced by the flock.
type Record struct {
	Backend string               `yaml:"backend"`
	Steps   map[string]time.Time `yaml:"steps"`
}

func NewRecord() *Record {
	return &Record{Steps: make(map[string]time.Time)}
}

type FileStore struct {
	path  string
	flock *flock.Flock
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

// WithLock serializes a whole lifecycle operation. The lock file lives
// next to the state file so concurrent invocations on the same host
// queue up instead of interleaving.
func (s *FileStore) WithLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := s.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer s.flock.Unlock()
	return fn()
}

func (s *FileStore) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewRecord(), nil
		}
		return nil, fmt.Errorf("reading state file %s: %w", s.path, domain.ErrStateReadFailed)
	}

	record := NewRecord()
	if err := yaml.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", s.path, domain.ErrStateSerializeFail)
	}
	if record.Steps == nil {
		record.Steps = make(map[string]time.Time)
	}
	return record, nil
}

func (s *FileStore) Save(record *Record) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("serializing state: %w", domain.ErrStateSerializeFail)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing state file %s: %w", s.path, domain.ErrStateWriteFailed)
	}
	return nil
}

// MarkStep records a completed lifecycle step for a backend. Switching
// backends resets the step history.
func (s *FileStore) MarkStep(backend, step string) error {
	record, err := s.Load()
	if err != nil {
		return err
	}
	if record.Backend != backend {
		record = NewRecord()
		record.Backend = backend
	}
	record.Steps[step] = time.Now().UTC()
	return s.Save(record)
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing state file %s: %w", s.path, domain.ErrStateWriteFailed)
	}
	return nil
}
