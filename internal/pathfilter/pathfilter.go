// Package pathfilter decides which directory entries belong in a
// workspace listing.
package pathfilter

import (
	"path/filepath"
	"strings"
)

// Filter classifies directory entries for workspace traversal.
type Filter struct {
	excludedDirs     map[string]bool
	contentExtension map[string]bool
}

// New creates a Filter with the default exclusion and extension rules.
func New() *Filter {
	return &Filter{
		excludedDirs: map[string]bool{
			"node_modules": true,
			"target":       true,
		},
		contentExtension: map[string]bool{
			"md":       true,
			"markdown": true,
			"mdown":    true,
		},
	}
}

// IsExcludedEntry reports whether a directory entry should be skipped
// entirely: hidden entries and known build or dependency directories.
// Excluded directories are never recursed into.
func (f *Filter) IsExcludedEntry(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return f.excludedDirs[name]
}

// IsContentFile reports whether path names a markdown-like file. The
// extension match is case-insensitive; extensionless files never qualify.
func (f *Filter) IsContentFile(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	return f.contentExtension[strings.ToLower(strings.TrimPrefix(ext, "."))]
}
