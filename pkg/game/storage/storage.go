// Package storage persists small JSON documents under string keys in a
// single file, the desktop counterpart of a browser's local storage.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"riftrewind/pkg/game/state"
)

// ErrNoData is returned when nothing is stored under the rewind key.
var ErrNoData = errors.New("no rewind data stored")

// DecodeError is returned when stored data exists but cannot be parsed.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Store is a key/value file store. It is safe for concurrent use within one
// process.
type Store struct {
	path string
	mu   sync.Mutex
}

// DefaultPath returns storage.json under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "riftrewind", "storage.json"), nil
}

// New returns a store backed by the file at path. The file is created on
// first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) readAll() (map[string]json.RawMessage, error) {
	items := map[string]json.RawMessage{}
	buf, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(buf) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(buf, &items); err != nil {
		return nil, &DecodeError{Key: s.path, Err: err}
	}
	return items, nil
}

func (s *Store) writeAll(items map[string]json.RawMessage) error {
	buf, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// GetItem returns the raw value stored under key.
func (s *Store) GetItem(key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readAll()
	if err != nil {
		return nil, false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

// SetItem stores value under key. value must be valid JSON.
func (s *Store) SetItem(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("set %s: value is not valid JSON", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readAll()
	if err != nil {
		// A corrupt file is replaced rather than blocking every future save.
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			return err
		}
		items = map[string]json.RawMessage{}
	}
	items[key] = value
	return s.writeAll(items)
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readAll()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.writeAll(items)
}

// SavePlayerData overwrites the stored rewind.
func (s *Store) SavePlayerData(data *state.PlayerData) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode rewind: %w", err)
	}
	return s.SetItem(state.StorageKey, buf)
}

// LoadPlayerData reads the stored rewind. It returns ErrNoData when nothing
// is stored and a *DecodeError when the stored value is malformed.
func (s *Store) LoadPlayerData() (*state.PlayerData, error) {
	raw, ok, err := s.GetItem(state.StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, ErrNoData
	}

	var data state.PlayerData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &DecodeError{Key: state.StorageKey, Err: err}
	}
	if err := data.Validate(); err != nil {
		return nil, &DecodeError{Key: state.StorageKey, Err: err}
	}
	return &data, nil
}

// HasPlayerData reports whether a usable rewind is stored.
func (s *Store) HasPlayerData() bool {
	_, err := s.LoadPlayerData()
	return err == nil
}
