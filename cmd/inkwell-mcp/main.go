// Package main implements the MCP server backing the Inkwell editor.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inkwell-md/inkwell-mcp/internal/config"
	"github.com/inkwell-md/inkwell-mcp/internal/document"
	"github.com/inkwell-md/inkwell-mcp/internal/fileops"
	"github.com/inkwell-md/inkwell-mcp/internal/logging"
	"github.com/inkwell-md/inkwell-mcp/internal/workspace"
)

var (
	store      *config.Store
	workspaces *workspace.Service
	mutations  *fileops.Service
	documents  *document.Service
)

var (
	flagDataDir  string
	flagLogLevel string
)

func main() {
	cmd := &cobra.Command{
		Use:   "inkwell-mcp",
		Short: "Workspace backend for the Inkwell markdown editor",
		Long: `inkwell-mcp is a Model Context Protocol (MCP) server that provides
the local-storage backend of the Inkwell markdown editor: workspace
file trees, file and folder mutations, editor settings, and
recent-items persistence. Any MCP-compatible client, including the
editor shell itself, talks to it over stdio.`,
		Example: `inkwell-mcp --data-dir ~/.config/inkwell`,
		Args:    cobra.NoArgs,
		RunE:    runServer,
	}
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "application data directory (default: per-user config dir)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := logging.Init(flagLogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	dataDir := flagDataDir
	if dataDir == "" {
		var err error
		dataDir, err = config.DefaultDir()
		if err != nil {
			return err
		}
	}

	store = config.New(dataDir)
	workspaces = workspace.New(store, nil)
	mutations = fileops.New()
	documents = document.New()

	logging.L().Info("starting server",
		zap.String("version", version),
		zap.String("data_dir", dataDir))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "inkwell-mcp",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		logging.L().Error("server stopped", zap.Error(err))
		return fmt.Errorf("error running server: %w", err)
	}

	logging.L().Info("server shut down")
	return nil
}
