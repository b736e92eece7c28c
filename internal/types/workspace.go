// Package types defines the data model shared across the Inkwell backend.
package types

// RecentWorkspaceLimit caps the recent-workspaces list.
const RecentWorkspaceLimit = 10

type (
	// Workspace identifies a project root directory.
	Workspace struct {
		Path string `json:"path"`
		Name string `json:"name"`
	}

	// WorkspaceFile is a node in a workspace's file tree. Children is
	// populated only for directories and omitted when empty.
	WorkspaceFile struct {
		Name        string          `json:"name"`
		Path        string          `json:"path"`
		IsDirectory bool            `json:"isDirectory"`
		Children    []WorkspaceFile `json:"children,omitempty"`
	}

	// WorkspaceConfig is the persisted workspace state. RecentWorkspaces
	// is ordered most-recent-first and bounded at RecentWorkspaceLimit.
	WorkspaceConfig struct {
		CurrentWorkspace string      `json:"current_workspace,omitempty"`
		RecentWorkspaces []Workspace `json:"recent_workspaces"`
	}
)
