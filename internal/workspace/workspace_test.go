package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/inkwell-md/inkwell-mcp/internal/config"
	"github.com/inkwell-md/inkwell-mcp/internal/fileops"
	"github.com/inkwell-md/inkwell-mcp/internal/types"
)

func setupTestService(t *testing.T) (*Service, string) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "inkwell-workspace-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store := config.New(filepath.Join(tmpDir, "appdata"))
	return New(store, nil), tmpDir
}

func mustMkdir(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", path, err)
	}
	return path
}

func TestService_Info(t *testing.T) {
	svc, _ := setupTestService(t)

	tests := []struct {
		path string
		want string
	}{
		{"/home/user/notes", "notes"},
		{"/home/user/notes/", "notes"},
		{"relative/dir", "dir"},
		{"/", FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ws := svc.Info(tt.path)
			if ws.Name != tt.want {
				t.Errorf("Info(%q).Name = %q, want %q", tt.path, ws.Name, tt.want)
			}
			if ws.Path != tt.path {
				t.Errorf("Info(%q).Path = %q, want the input path", tt.path, ws.Path)
			}
		})
	}
}

func TestService_CurrentAndSet(t *testing.T) {
	t.Run("no workspace selected", func(t *testing.T) {
		svc, _ := setupTestService(t)

		ws, err := svc.Current()
		if err != nil {
			t.Fatalf("Current() error = %v", err)
		}
		if ws != nil {
			t.Errorf("Current() = %v, want nil", ws)
		}
	})

	t.Run("set then current", func(t *testing.T) {
		svc, tmpDir := setupTestService(t)
		wsPath := mustMkdir(t, filepath.Join(tmpDir, "project"))

		if err := svc.Set(wsPath); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		ws, err := svc.Current()
		if err != nil {
			t.Fatalf("Current() error = %v", err)
		}
		if ws == nil {
			t.Fatal("Current() = nil, want workspace")
		}
		if ws.Path != wsPath || ws.Name != "project" {
			t.Errorf("Current() = %+v, want {%s project}", ws, wsPath)
		}
	})

	t.Run("stale current workspace reads as absent", func(t *testing.T) {
		svc, tmpDir := setupTestService(t)
		wsPath := mustMkdir(t, filepath.Join(tmpDir, "doomed"))

		if err := svc.Set(wsPath); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		os.RemoveAll(wsPath)

		ws, err := svc.Current()
		if err != nil {
			t.Fatalf("Current() error = %v", err)
		}
		if ws != nil {
			t.Errorf("Current() = %v, want nil for a deleted workspace", ws)
		}
	})
}

func TestService_Recent(t *testing.T) {
	t.Run("capacity and move-to-front", func(t *testing.T) {
		svc, tmpDir := setupTestService(t)

		var paths []string
		for i := 0; i < 11; i++ {
			paths = append(paths, mustMkdir(t, filepath.Join(tmpDir, "ws-"+strconv.Itoa(i))))
		}
		for _, p := range paths {
			if err := svc.Set(p); err != nil {
				t.Fatalf("Set(%s) error = %v", p, err)
			}
		}

		recent, err := svc.Recent()
		if err != nil {
			t.Fatalf("Recent() error = %v", err)
		}
		if len(recent) != types.RecentWorkspaceLimit {
			t.Fatalf("len = %d, want %d", len(recent), types.RecentWorkspaceLimit)
		}
		if recent[0].Path != paths[10] {
			t.Errorf("recent[0] = %s, want %s", recent[0].Path, paths[10])
		}

		// Re-setting the 2nd-most-recent moves it to the front without growth.
		if err := svc.Set(paths[9]); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		recent, err = svc.Recent()
		if err != nil {
			t.Fatalf("Recent() error = %v", err)
		}
		if len(recent) != types.RecentWorkspaceLimit {
			t.Fatalf("len = %d after re-set, want %d", len(recent), types.RecentWorkspaceLimit)
		}
		if recent[0].Path != paths[9] || recent[1].Path != paths[10] {
			t.Errorf("front = %s, %s, want %s, %s", recent[0].Path, recent[1].Path, paths[9], paths[10])
		}
	})

	t.Run("deleted workspaces are filtered, not pruned", func(t *testing.T) {
		svc, tmpDir := setupTestService(t)

		keep := mustMkdir(t, filepath.Join(tmpDir, "keep"))
		gone := mustMkdir(t, filepath.Join(tmpDir, "gone"))
		svc.Set(keep)
		svc.Set(gone)
		os.RemoveAll(gone)

		recent, err := svc.Recent()
		if err != nil {
			t.Fatalf("Recent() error = %v", err)
		}
		if len(recent) != 1 || recent[0].Path != keep {
			t.Errorf("Recent() = %v, want only %s", recent, keep)
		}

		// Two reads with no intervening mutation agree.
		again, err := svc.Recent()
		if err != nil {
			t.Fatalf("Recent() error = %v", err)
		}
		if len(again) != len(recent) || again[0] != recent[0] {
			t.Errorf("Recent() not stable: %v then %v", recent, again)
		}
	})
}

func TestService_ListFiles(t *testing.T) {
	t.Run("missing workspace fails", func(t *testing.T) {
		svc, tmpDir := setupTestService(t)

		_, err := svc.ListFiles(filepath.Join(tmpDir, "nope"))
		if !errors.Is(err, fileops.ErrNotExist) {
			t.Errorf("error = %v, want ErrNotExist", err)
		}
	})

	t.Run("create then list round trip", func(t *testing.T) {
		svc, tmpDir := setupTestService(t)
		wsPath := mustMkdir(t, filepath.Join(tmpDir, "project"))

		created, err := fileops.New().CreateFile(wsPath, "x.md")
		if err != nil {
			t.Fatalf("CreateFile() error = %v", err)
		}

		files, err := svc.ListFiles(wsPath)
		if err != nil {
			t.Fatalf("ListFiles() error = %v", err)
		}
		if len(files) != 1 || files[0].Name != "x.md" || files[0].Path != created {
			t.Errorf("ListFiles() = %v, want one leaf at %s", files, created)
		}
	})

	t.Run("deleted directory disappears from listing", func(t *testing.T) {
		svc, tmpDir := setupTestService(t)
		wsPath := mustMkdir(t, filepath.Join(tmpDir, "project"))
		sub := mustMkdir(t, filepath.Join(wsPath, "sub"))
		if err := os.WriteFile(filepath.Join(sub, "n.md"), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		if err := fileops.New().Delete(sub); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		files, err := svc.ListFiles(wsPath)
		if err != nil {
			t.Fatalf("ListFiles() error = %v", err)
		}
		if len(files) != 0 {
			t.Errorf("ListFiles() = %v, want empty after delete", files)
		}
	})
}
