// Package storage provides the key-value persistence slots td writes its
// list to, and the user configuration that sits next to them.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// tdDir is the name of the td directory.
	tdDir = ".td"
	// slotsDir is the subdirectory holding one file per slot key.
	slotsDir = "slots"
	// configFile is the name of the config file within .td/.
	configFile = "config.yaml"
	// slotExt is the file extension of slot files.
	slotExt = ".json"
)

// slotKeyRegex restricts slot keys to names that are safe as file names.
var slotKeyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// KV is a store of named slots, each holding one opaque value.
// Values are always written in full.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// StorageConfig contains settings stored in .td/config.yaml.
type StorageConfig struct {
	Version int `yaml:"version"`
}

// Storage is a KV backed by a .td/ directory.
type Storage struct {
	root string // path to directory containing .td/
}

// Open returns a Storage for the given directory.
// Returns error if .td/ does not exist.
func Open(dir string) (*Storage, error) {
	tdPath := filepath.Join(dir, tdDir)
	info, err := os.Stat(tdPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".td/ directory not found in %s (run 'td init')", dir)
		}
		return nil, fmt.Errorf("failed to access .td/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".td is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates an empty .td/ directory.
// Returns error if .td/ already exists.
func Init(dir string) (*Storage, error) {
	tdPath := filepath.Join(dir, tdDir)

	if _, err := os.Stat(tdPath); err == nil {
		return nil, fmt.Errorf(".td/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .td/: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(tdPath, slotsDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create .td/slots/: %w", err)
	}

	cfgData, err := yaml.Marshal(&StorageConfig{Version: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(tdPath, configFile), cfgData, 0644); err != nil {
		os.RemoveAll(tdPath)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	return &Storage{root: dir}, nil
}

// Root returns the root directory containing .td/.
func (s *Storage) Root() string {
	return s.root
}

// TdPath returns the path to the .td/ directory.
func (s *Storage) TdPath() string {
	return filepath.Join(s.root, tdDir)
}

// SlotPath returns the file path backing a slot key.
func (s *Storage) SlotPath(key string) string {
	return filepath.Join(s.root, tdDir, slotsDir, key+slotExt)
}

// Get returns the value stored under key.
// The boolean is false if the slot has never been written.
func (s *Storage) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(s.SlotPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, true, nil
}

// Put replaces the value stored under key.
// The value is written to a temporary file and renamed into place, so a
// reader never sees a partially written slot.
func (s *Storage) Put(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	dir := filepath.Join(s.root, tdDir, slotsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create .td/slots/: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close slot %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, s.SlotPath(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}
	return nil
}

// Delete removes a slot. Deleting a missing slot is not an error.
func (s *Storage) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.SlotPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

// ListSlots returns the keys of all written slots, sorted.
func (s *Storage) ListSlots() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, tdDir, slotsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read slots directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, slotExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, slotExt))
	}
	sort.Strings(keys)
	return keys, nil
}

func validateKey(key string) error {
	if !slotKeyRegex.MatchString(key) {
		return fmt.Errorf("invalid slot key %q (letters, digits, '-' and '_' only)", key)
	}
	return nil
}
