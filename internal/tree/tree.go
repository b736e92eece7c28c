// Package tree builds the markdown file tree of a workspace.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inkwell-md/inkwell-mcp/internal/pathfilter"
	"github.com/inkwell-md/inkwell-mcp/internal/types"
)

// Builder walks a workspace root and produces its file tree. Trees are
// rebuilt from scratch on every call; nothing is cached or watched.
type Builder struct {
	filter *pathfilter.Filter
}

// New creates a Builder.
func New(f *pathfilter.Filter) *Builder {
	if f == nil {
		f = pathfilter.New()
	}
	return &Builder{filter: f}
}

// Build returns the ordered forest of markdown files and
// content-bearing directories under root. An empty workspace yields an
// empty slice, not an error. Unreadable subtrees below the root are
// dropped from the listing rather than failing it.
func (b *Builder) Build(root string) ([]types.WorkspaceFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return b.walk(absRoot)
}

func (b *Builder) walk(dir string) ([]types.WorkspaceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %s - %w", dir, err)
	}

	var files []types.WorkspaceFile

	for _, entry := range entries {
		name := entry.Name()
		if b.filter.IsExcludedEntry(name) {
			continue
		}

		entryPath := filepath.Join(dir, name)

		if entry.IsDir() {
			children, err := b.walk(entryPath)
			if err != nil || len(children) == 0 {
				// Unreadable or content-free directories are pruned.
				continue
			}
			files = append(files, types.WorkspaceFile{
				Name:        name,
				Path:        entryPath,
				IsDirectory: true,
				Children:    children,
			})
		} else if b.filter.IsContentFile(name) {
			// Symlinks are not directories here, so a link to a
			// markdown file lists as a file.
			files = append(files, types.WorkspaceFile{
				Name:        name,
				Path:        entryPath,
				IsDirectory: false,
			})
		}
	}

	// Directories before files, then case-insensitive by name.
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].IsDirectory != files[j].IsDirectory {
			return files[i].IsDirectory
		}
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})

	return files, nil
}
