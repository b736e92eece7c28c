// Package document reads and writes editor documents.
package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/inkwell-md/inkwell-mcp/internal/frontmatter"
	"github.com/inkwell-md/inkwell-mcp/internal/types"
)

// Service provides the open/save/new document surface. The editor
// holds buffer state; this service only touches disk.
type Service struct{}

// New creates a Service.
func New() *Service {
	return &Service{}
}

// Open reads the file at path into a Document. A YAML frontmatter
// block, when present, is parsed for the presentation layer; Content
// always carries the full raw file.
func (s *Service) Open(path string) (types.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.Document{}, fmt.Errorf("file not found: %s", path)
		}
		if errors.Is(err, os.ErrPermission) {
			return types.Document{}, fmt.Errorf("permission denied: %s", path)
		}
		return types.Document{}, fmt.Errorf("failed to read file: %s - %w", path, err)
	}

	fields, _ := frontmatter.Split(string(content))
	return types.Document{
		Path:        path,
		Content:     string(content),
		Frontmatter: fields,
	}, nil
}

// Save writes content to path, replacing any existing file.
func (s *Service) Save(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %s - %w", path, err)
	}
	return nil
}

// SaveWithFrontmatter composes fields into a YAML frontmatter block
// ahead of body and writes the result to path.
func (s *Service) SaveWithFrontmatter(path string, fields map[string]any, body string) error {
	content, err := frontmatter.Compose(fields, body)
	if err != nil {
		return err
	}
	return s.Save(path, content)
}

// NewDocument returns an empty unsaved document.
func (s *Service) NewDocument() types.Document {
	return types.Document{}
}
