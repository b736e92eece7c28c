package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-md/inkwell-mcp/internal/types"
)

type (
	// ListInput contains parameters for listing a workspace's file tree.
	ListInput struct {
		Path string `json:"path" jsonschema:"Absolute path of the workspace root"`
	}

	// ListOutput contains a workspace's ordered file tree.
	ListOutput struct {
		Files []types.WorkspaceFile `json:"files"`
	}

	// CreateFileInput contains parameters for creating a file.
	CreateFileInput struct {
		Path string `json:"path" jsonschema:"Directory to create the file in"`
		Name string `json:"name" jsonschema:"Name of the new file"`
	}

	// CreateFolderInput contains parameters for creating a folder.
	CreateFolderInput struct {
		Path string `json:"path" jsonschema:"Directory to create the folder in"`
		Name string `json:"name" jsonschema:"Name of the new folder"`
	}

	// CreateOutput contains the path of a created file or folder.
	CreateOutput struct {
		Path string `json:"path"`
	}

	// DeleteInput contains parameters for deleting a file or folder.
	DeleteInput struct {
		Path string `json:"path" jsonschema:"Absolute path to delete; directories are removed recursively"`
	}

	// DeleteOutput contains the result of a delete.
	DeleteOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}

	// RenameInput contains parameters for renaming a file or folder.
	RenameInput struct {
		Path    string `json:"path" jsonschema:"Current absolute path"`
		NewName string `json:"newName" jsonschema:"New bare name; the entry stays in its directory"`
	}

	// RenameOutput contains the renamed entry's new path.
	RenameOutput struct {
		OldPath string `json:"oldPath"`
		NewPath string `json:"newPath"`
	}

	// WorkspaceInfoInput contains parameters for deriving workspace info.
	WorkspaceInfoInput struct {
		Path string `json:"path" jsonschema:"Workspace root directory"`
	}

	// CurrentWorkspaceInput has no parameters.
	CurrentWorkspaceInput struct{}

	// CurrentWorkspaceOutput contains the selected workspace, if any.
	CurrentWorkspaceOutput struct {
		Workspace *types.Workspace `json:"workspace,omitempty"`
	}

	// SetWorkspaceInput contains parameters for selecting a workspace.
	SetWorkspaceInput struct {
		Path string `json:"path" jsonschema:"Workspace root directory to select"`
	}

	// SetWorkspaceOutput contains the result of selecting a workspace.
	SetWorkspaceOutput struct {
		Success bool `json:"success"`
	}

	// RecentWorkspacesInput has no parameters.
	RecentWorkspacesInput struct{}

	// RecentWorkspacesOutput lists recently opened workspaces that
	// still exist, most recent first.
	RecentWorkspacesOutput struct {
		Workspaces []types.Workspace `json:"workspaces"`
	}

	// OpenInput contains parameters for opening a document.
	OpenInput struct {
		Path string `json:"path" jsonschema:"Absolute path of the file to open"`
	}

	// SaveInput contains parameters for saving a document.
	SaveInput struct {
		Path        string         `json:"path" jsonschema:"Absolute path to save to"`
		Content     string         `json:"content" jsonschema:"Document content; the body when frontmatter is given"`
		Frontmatter map[string]any `json:"frontmatter,omitempty" jsonschema:"Frontmatter fields to compose ahead of the content (optional)"`
	}

	// SaveOutput contains the result of saving a document.
	SaveOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}

	// NewDocumentInput has no parameters.
	NewDocumentInput struct{}

	// GetSettingsInput has no parameters.
	GetSettingsInput struct{}

	// SetSettingsInput contains the settings document to persist.
	SetSettingsInput struct {
		Settings types.EditorSettings `json:"settings" jsonschema:"Complete editor settings to persist"`
	}

	// SetSettingsOutput contains the result of persisting settings.
	SetSettingsOutput struct {
		Success bool `json:"success"`
	}

	// RecentFilesInput has no parameters.
	RecentFilesInput struct{}

	// RecentFilesOutput lists recently opened files, most recent first.
	RecentFilesOutput struct {
		Files []string `json:"files"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List a workspace's markdown file tree. Directories sort before files; empty and hidden directories are omitted.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_file",
		Description: "Create an empty file in a directory. Fails if the target already exists.",
	}, handleCreateFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_folder",
		Description: "Create a folder in a directory. The parent must exist; fails if the target already exists.",
	}, handleCreateFolder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete",
		Description: "Delete a file, or a folder with its entire contents. Immediate and unrecoverable.",
	}, handleDelete)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename",
		Description: "Rename a file or folder in place. The new name is a bare name; moving between directories is not supported.",
	}, handleRename)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "workspace_info",
		Description: "Derive display information (name) for a workspace path.",
	}, handleWorkspaceInfo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "current_workspace",
		Description: "Get the currently selected workspace, or nothing if none is selected or its directory no longer exists.",
	}, handleCurrentWorkspace)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_workspace",
		Description: "Select a workspace and record it at the front of the recent-workspaces list.",
	}, handleSetWorkspace)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_workspaces",
		Description: "List recently opened workspaces, most recent first, limited to those that still exist.",
	}, handleRecentWorkspaces)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "open",
		Description: "Open a document. Returns the raw content plus parsed YAML frontmatter, and records the file as recently used.",
	}, handleOpen)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save",
		Description: "Save a document's content to disk and record the file as recently used.",
	}, handleSave)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "new_document",
		Description: "Create a new empty, unsaved document buffer.",
	}, handleNewDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_settings",
		Description: "Get the editor settings, falling back to defaults when none are saved.",
	}, handleGetSettings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_settings",
		Description: "Persist the editor settings document.",
	}, handleSetSettings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_files",
		Description: "List recently opened files, most recent first.",
	}, handleRecentFiles)
}
