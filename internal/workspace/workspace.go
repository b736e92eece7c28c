// Package workspace orchestrates workspace selection, persistence, and
// file-tree listing.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkwell-md/inkwell-mcp/internal/config"
	"github.com/inkwell-md/inkwell-mcp/internal/fileops"
	"github.com/inkwell-md/inkwell-mcp/internal/tree"
	"github.com/inkwell-md/inkwell-mcp/internal/types"
)

// FallbackName labels a workspace whose path has no final segment,
// such as a filesystem root.
const FallbackName = "Workspace"

// Service exposes the workspace operations at the editor boundary.
type Service struct {
	store   *config.Store
	builder *tree.Builder
}

// New creates a Service backed by store.
func New(store *config.Store, builder *tree.Builder) *Service {
	if builder == nil {
		builder = tree.New(nil)
	}
	return &Service{store: store, builder: builder}
}

// Info derives display information for a workspace path. It never
// fails: a path without a usable final segment gets the fallback name.
func (s *Service) Info(path string) types.Workspace {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) || name == "" {
		name = FallbackName
	}
	return types.Workspace{Path: path, Name: name}
}

// Current returns the selected workspace, or nil when none is selected.
// A stored workspace whose directory no longer exists reads as absent
// rather than as an error; the stale pointer stays in storage.
func (s *Service) Current() (*types.Workspace, error) {
	cfg, err := s.store.LoadWorkspaces()
	if err != nil {
		return nil, err
	}
	if cfg.CurrentWorkspace == "" {
		return nil, nil
	}
	if _, err := os.Stat(cfg.CurrentWorkspace); err != nil {
		return nil, nil
	}
	ws := s.Info(cfg.CurrentWorkspace)
	return &ws, nil
}

// Set selects path as the current workspace and moves it to the front
// of the recent list, deduplicating by path and truncating to the
// capacity limit.
func (s *Service) Set(path string) error {
	ws := s.Info(path)
	return s.store.UpdateWorkspaces(func(cfg *types.WorkspaceConfig) {
		cfg.CurrentWorkspace = path

		updated := []types.Workspace{ws}
		for _, w := range cfg.RecentWorkspaces {
			if w.Path != ws.Path {
				updated = append(updated, w)
			}
		}
		if len(updated) > types.RecentWorkspaceLimit {
			updated = updated[:types.RecentWorkspaceLimit]
		}
		cfg.RecentWorkspaces = updated
	})
}

// Recent returns the recently opened workspaces, most recent first,
// filtered to paths that still exist. Entries for deleted directories
// are dropped from the result but not from storage.
func (s *Service) Recent() ([]types.Workspace, error) {
	cfg, err := s.store.LoadWorkspaces()
	if err != nil {
		return nil, err
	}

	var valid []types.Workspace
	for _, w := range cfg.RecentWorkspaces {
		if _, err := os.Stat(w.Path); err == nil {
			valid = append(valid, w)
		}
	}
	return valid, nil
}

// ListFiles builds a fresh file tree for the workspace at path.
func (s *Service) ListFiles(path string) ([]types.WorkspaceFile, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("workspace path %s: %w", path, fileops.ErrNotExist)
		}
		return nil, err
	}
	return s.builder.Build(path)
}
