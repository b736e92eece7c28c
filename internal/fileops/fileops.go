// Package fileops performs file and folder mutations inside a workspace.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Domain precondition failures. Callers discriminate with errors.Is;
// underlying I/O errors are propagated as-is.
var (
	// ErrExists is returned when a create or rename target already exists.
	ErrExists = errors.New("already exists")
	// ErrNotExist is returned when the operation's subject is missing.
	ErrNotExist = errors.New("does not exist")
	// ErrNoParent is returned when renaming a path with no parent
	// directory, such as a filesystem root.
	ErrNoParent = errors.New("cannot determine parent directory")
)

// Service mutates the live filesystem. Every operation validates its
// preconditions directly against disk; none of them rebuild the tree.
type Service struct{}

// New creates a Service.
func New() *Service {
	return &Service{}
}

// CreateFile creates an empty file named name in baseDir and returns
// its absolute path. Fails if the target already exists.
func (s *Service) CreateFile(baseDir, name string) (string, error) {
	target, err := filepath.Abs(filepath.Join(baseDir, name))
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%s: %w", target, ErrExists)
		}
		return "", fmt.Errorf("failed to create file: %s - %w", target, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to create file: %s - %w", target, err)
	}
	return target, nil
}

// CreateFolder creates a directory named name in baseDir and returns
// its absolute path. The parent must already exist; fails if the
// target already exists.
func (s *Service) CreateFolder(baseDir, name string) (string, error) {
	target, err := filepath.Abs(filepath.Join(baseDir, name))
	if err != nil {
		return "", err
	}

	if err := os.Mkdir(target, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%s: %w", target, ErrExists)
		}
		return "", fmt.Errorf("failed to create folder: %s - %w", target, err)
	}
	return target, nil
}

// Delete removes path. Directories are removed with their entire
// contents; the removal is immediate and unrecoverable.
func (s *Service) Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNotExist)
		}
		return err
	}

	if info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to delete folder: %s - %w", path, err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %s - %w", path, err)
	}
	return nil
}

// Rename gives oldPath the bare name newName within its parent
// directory and returns the new absolute path. Moving across
// directories is not supported.
func (s *Service) Rename(oldPath, newName string) (string, error) {
	oldPath, err := filepath.Abs(oldPath)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(oldPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", oldPath, ErrNotExist)
		}
		return "", err
	}

	parent := filepath.Dir(oldPath)
	if parent == oldPath {
		return "", fmt.Errorf("%s: %w", oldPath, ErrNoParent)
	}

	newPath := filepath.Join(parent, newName)
	if _, err := os.Stat(newPath); err == nil {
		return "", fmt.Errorf("%s: %w", newPath, ErrExists)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("failed to rename: %s - %w", oldPath, err)
	}
	return newPath, nil
}
