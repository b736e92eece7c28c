// Package config persists the editor's per-user state: workspace
// config, editor settings, and the recent-files list.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/inkwell-md/inkwell-mcp/internal/types"
)

const (
	workspaceConfigFile = "workspace_config.json"
	settingsFile        = "settings.json"
	recentFilesFile     = "recent_files.json"

	// RecentFileLimit caps the recent-files list.
	RecentFileLimit = 10
)

// Store reads and writes the JSON documents in the application-data
// directory. Each document is rewritten whole on every update; the
// mutex serializes read-modify-write cycles within this process.
// Concurrent writers in other processes race last-write-wins.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user application-data directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine application data directory: %w", err)
	}
	return filepath.Join(base, "inkwell"), nil
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// LoadWorkspaces reads the workspace config. A missing file yields the
// zero config; a corrupt file is a SerializationError for the caller.
func (s *Store) LoadWorkspaces() (types.WorkspaceConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadWorkspacesLocked()
}

// UpdateWorkspaces applies fn to the stored workspace config and writes
// the result back, all under the store lock.
func (s *Store) UpdateWorkspaces(fn func(*types.WorkspaceConfig)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.loadWorkspacesLocked()
	if err != nil {
		return err
	}
	fn(&cfg)
	return s.writeDocument(workspaceConfigFile, cfg)
}

// LoadSettings reads the editor settings, falling back to the defaults
// when nothing has been saved yet.
func (s *Store) LoadSettings() (types.EditorSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := types.DefaultSettings()
	err := s.readDocument(settingsFile, &settings)
	if errors.Is(err, os.ErrNotExist) {
		return types.DefaultSettings(), nil
	}
	if err != nil {
		return types.EditorSettings{}, err
	}
	return settings, nil
}

// SaveSettings writes the editor settings.
func (s *Store) SaveSettings(settings types.EditorSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeDocument(settingsFile, settings)
}

// RecentFiles returns the recent-files list, most recent first.
func (s *Store) RecentFiles() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var files []string
	err := s.readDocument(recentFilesFile, &files)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return files, nil
}

// AddRecentFile moves path to the front of the recent-files list,
// deduplicating and truncating to RecentFileLimit.
func (s *Store) AddRecentFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var files []string
	if err := s.readDocument(recentFilesFile, &files); err != nil && !errors.Is(err, os.ErrNotExist) {
		// A corrupt list is replaced rather than blocking the editor.
		files = nil
	}

	updated := []string{path}
	for _, f := range files {
		if f != path {
			updated = append(updated, f)
		}
	}
	if len(updated) > RecentFileLimit {
		updated = updated[:RecentFileLimit]
	}

	return s.writeDocument(recentFilesFile, updated)
}

func (s *Store) loadWorkspacesLocked() (types.WorkspaceConfig, error) {
	var cfg types.WorkspaceConfig
	err := s.readDocument(workspaceConfigFile, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return types.WorkspaceConfig{}, nil
	}
	if err != nil {
		return types.WorkspaceConfig{}, err
	}
	return cfg, nil
}

func (s *Store) readDocument(name string, v any) error {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// writeDocument writes the document via a temp file and rename so a
// crash mid-write never leaves a truncated document behind.
func (s *Store) writeDocument(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create application data directory: %w", err)
	}

	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
