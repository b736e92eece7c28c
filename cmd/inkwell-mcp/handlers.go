package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/inkwell-md/inkwell-mcp/internal/logging"
	"github.com/inkwell-md/inkwell-mcp/internal/types"
)

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	path := strings.TrimSpace(input.Path)
	files, err := workspaces.ListFiles(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}
	return nil, ListOutput{Files: files}, nil
}

func handleCreateFile(ctx context.Context, req *mcp.CallToolRequest, input CreateFileInput) (*mcp.CallToolResult, CreateOutput, error) {
	created, err := mutations.CreateFile(strings.TrimSpace(input.Path), strings.TrimSpace(input.Name))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CreateOutput{}, err
	}
	return nil, CreateOutput{Path: created}, nil
}

func handleCreateFolder(ctx context.Context, req *mcp.CallToolRequest, input CreateFolderInput) (*mcp.CallToolResult, CreateOutput, error) {
	created, err := mutations.CreateFolder(strings.TrimSpace(input.Path), strings.TrimSpace(input.Name))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CreateOutput{}, err
	}
	return nil, CreateOutput{Path: created}, nil
}

func handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	path := strings.TrimSpace(input.Path)
	if err := mutations.Delete(path); err != nil {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{Success: false, Path: path}, err
	}
	logging.L().Info("deleted", zap.String("path", path))
	return nil, DeleteOutput{Success: true, Path: path}, nil
}

func handleRename(ctx context.Context, req *mcp.CallToolRequest, input RenameInput) (*mcp.CallToolResult, RenameOutput, error) {
	oldPath := strings.TrimSpace(input.Path)
	newPath, err := mutations.Rename(oldPath, strings.TrimSpace(input.NewName))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RenameOutput{OldPath: oldPath}, err
	}
	return nil, RenameOutput{OldPath: oldPath, NewPath: newPath}, nil
}

func handleWorkspaceInfo(ctx context.Context, req *mcp.CallToolRequest, input WorkspaceInfoInput) (*mcp.CallToolResult, types.Workspace, error) {
	return nil, workspaces.Info(strings.TrimSpace(input.Path)), nil
}

func handleCurrentWorkspace(ctx context.Context, req *mcp.CallToolRequest, input CurrentWorkspaceInput) (*mcp.CallToolResult, CurrentWorkspaceOutput, error) {
	ws, err := workspaces.Current()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CurrentWorkspaceOutput{}, err
	}
	return nil, CurrentWorkspaceOutput{Workspace: ws}, nil
}

func handleSetWorkspace(ctx context.Context, req *mcp.CallToolRequest, input SetWorkspaceInput) (*mcp.CallToolResult, SetWorkspaceOutput, error) {
	path := strings.TrimSpace(input.Path)
	if err := workspaces.Set(path); err != nil {
		return &mcp.CallToolResult{IsError: true}, SetWorkspaceOutput{}, err
	}
	logging.L().Info("workspace selected", zap.String("path", path))
	return nil, SetWorkspaceOutput{Success: true}, nil
}

func handleRecentWorkspaces(ctx context.Context, req *mcp.CallToolRequest, input RecentWorkspacesInput) (*mcp.CallToolResult, RecentWorkspacesOutput, error) {
	recent, err := workspaces.Recent()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RecentWorkspacesOutput{}, err
	}
	return nil, RecentWorkspacesOutput{Workspaces: recent}, nil
}

func handleOpen(ctx context.Context, req *mcp.CallToolRequest, input OpenInput) (*mcp.CallToolResult, types.Document, error) {
	path := strings.TrimSpace(input.Path)
	doc, err := documents.Open(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.Document{}, err
	}
	if err := store.AddRecentFile(path); err != nil {
		logging.L().Warn("failed to record recent file", zap.String("path", path), zap.Error(err))
	}
	return nil, doc, nil
}

func handleSave(ctx context.Context, req *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, SaveOutput, error) {
	path := strings.TrimSpace(input.Path)
	var err error
	if input.Frontmatter != nil {
		err = documents.SaveWithFrontmatter(path, input.Frontmatter, input.Content)
	} else {
		err = documents.Save(path, input.Content)
	}
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SaveOutput{Success: false, Path: path}, err
	}
	if err := store.AddRecentFile(path); err != nil {
		logging.L().Warn("failed to record recent file", zap.String("path", path), zap.Error(err))
	}
	return nil, SaveOutput{Success: true, Path: path}, nil
}

func handleNewDocument(ctx context.Context, req *mcp.CallToolRequest, input NewDocumentInput) (*mcp.CallToolResult, types.Document, error) {
	return nil, documents.NewDocument(), nil
}

func handleGetSettings(ctx context.Context, req *mcp.CallToolRequest, input GetSettingsInput) (*mcp.CallToolResult, types.EditorSettings, error) {
	settings, err := store.LoadSettings()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.EditorSettings{}, err
	}
	return nil, settings, nil
}

func handleSetSettings(ctx context.Context, req *mcp.CallToolRequest, input SetSettingsInput) (*mcp.CallToolResult, SetSettingsOutput, error) {
	if err := store.SaveSettings(input.Settings); err != nil {
		return &mcp.CallToolResult{IsError: true}, SetSettingsOutput{}, err
	}
	return nil, SetSettingsOutput{Success: true}, nil
}

func handleRecentFiles(ctx context.Context, req *mcp.CallToolRequest, input RecentFilesInput) (*mcp.CallToolResult, RecentFilesOutput, error) {
	files, err := store.RecentFiles()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RecentFilesOutput{}, err
	}
	return nil, RecentFilesOutput{Files: files}, nil
}
